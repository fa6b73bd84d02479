package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in an empty working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())
	return buf.String(), err
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestList_BuiltInDataSet(t *testing.T) {
	inTempDir(t)

	out, err := execute(t, "list", "--era", "Ancient", "--group-by", "none", "--sort-by", "name")
	require.NoError(t, err)

	assert.Contains(t, out, "of 46 rulers")
	assert.Contains(t, out, "All Rulers")
	assert.Contains(t, out, "Ashoka")
	assert.NotContains(t, out, "Gopala")
}

func TestList_Cards(t *testing.T) {
	inTempDir(t)

	out, err := execute(t, "list", "--search", "gopala", "--format", "cards")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 1 of 46 rulers")
	assert.Contains(t, out, "Elected to end the Matsyanyaya")
}

func TestList_InvalidFlags(t *testing.T) {
	inTempDir(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "format", args: []string{"list", "--format", "grid"}, want: "invalid format"},
		{name: "era", args: []string{"list", "--era", "Bronze"}, want: "--era"},
		{name: "group", args: []string{"list", "--group-by", "century"}, want: "--group-by"},
		{name: "order", args: []string{"list", "--order", "up"}, want: "--order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestShow(t *testing.T) {
	inTempDir(t)

	out, err := execute(t, "show", "pala-6")
	require.NoError(t, err)
	assert.Contains(t, out, "Madanapala")
	assert.Contains(t, out, "No credible historical information is currently available for Madanapala")
	assert.Contains(t, out, "History of Bengal, Vol. 1-2 by R.C. Majumdar")

	_, err = execute(t, "show", "nobody-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ruler not found")
}

func TestTimeline(t *testing.T) {
	inTempDir(t)

	out, err := execute(t, "timeline")
	require.NoError(t, err)
	assert.Contains(t, out, "Anga Kingdom")
	assert.Contains(t, out, "End of Bengal's Royal History — 1947 CE")
}

func TestStats(t *testing.T) {
	inTempDir(t)

	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Rulers:    46")
	assert.Contains(t, out, "Dynasties: 15")
	assert.Contains(t, out, "Span:      3047 years")
}

func TestErasAndReligions(t *testing.T) {
	out, err := execute(t, "eras")
	require.NoError(t, err)
	assert.Contains(t, out, "era-post-classical")

	out, err = execute(t, "religions")
	require.NoError(t, err)
	assert.Contains(t, out, "religion-buddhist")
}

func TestSearch(t *testing.T) {
	inTempDir(t)

	out, err := execute(t, "search", "pala")
	require.NoError(t, err)
	assert.Contains(t, out, "Gopala")
	assert.Contains(t, out, "Dharmapala")
}

func TestInit(t *testing.T) {
	dir := inTempDir(t)

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(".regnal", "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, ".regnal", "config.yaml"))

	_, err = execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestImport(t *testing.T) {
	dir := inTempDir(t)

	catalog := `{
  "dynasties": [
    {"name": "Deva Dynasty", "era": "Medieval", "start_year": 1200, "end_year": 1300, "rulers": [
      {"id": "deva-1", "name": "Purushottama", "religion": "Hindu", "reign_start": 1200, "reign_end": 1220},
      {"id": "", "name": "Nameless", "religion": "Hindu", "reign_start": 1220, "reign_end": 1230}
    ]}
  ],
  "details": {"deva-1": {"biography": "Founder."}}
}`
	path := filepath.Join(dir, "deva.json")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	out, err := execute(t, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Validation errors (1)")
	assert.Contains(t, out, "Imported: 1 dynasties, 1 rulers, 1 details, 1 skipped")

	_, err = execute(t, "import", "--strict", path)
	require.Error(t, err)

	out, err = execute(t, "--data", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 1 rulers")
}

func TestImport_WritesSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sqlite snapshot in short mode")
	}
	dir := inTempDir(t)

	csvData := "id,name,dynasty,era,religion,reign_start,reign_end,notes\n" +
		"deva-1,Purushottama,Deva Dynasty,Medieval,Hindu,1200,1220,\n" +
		"deva-2,Madhusudana,Deva Dynasty,Medieval,Hindu,1220,1250,\n"
	path := filepath.Join(dir, "deva.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))
	db := filepath.Join(dir, "deva.db")

	out, err := execute(t, "import", "--sqlite", db, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 dynasties, 2 rulers, 0 details to "+db)

	out, err = execute(t, "--from-sqlite", db, "search", "madhu")
	require.NoError(t, err)
	assert.Contains(t, out, "Madhusudana")
}

func TestExport_SQLiteSnapshotRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sqlite round trip in short mode")
	}
	dir := inTempDir(t)
	db := filepath.Join(dir, "bengal.db")

	out, err := execute(t, "export", "--format", "sqlite", "--output", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 15 dynasties, 46 rulers, 40 details to "+db)

	out, err = execute(t, "--from-sqlite", db, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Rulers:    46")

	_, err = execute(t, "export", "--format", "sqlite")
	require.Error(t, err)
}

func TestExport_CSVToFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "pala.csv")

	out, err := execute(t, "export", "--format", "csv", "--search", "pala", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 6 rulers to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Pala Empire,pala-1,Gopala")
}
