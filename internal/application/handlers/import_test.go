package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/regnal/internal/domain/services"
)

const dynastiesYAML = `dynasties:
  - name: Sena Dynasty
    era: Post-Classical
    start_year: 1097
    end_year: 1225
    rulers:
      - {id: sena-1, name: Vijaya Sena, religion: Hindu, reign_start: 1097, reign_end: 1158}
      - {id: sena-2, name: Ballala Sena, religion: Hinduism, reign_start: 1158, reign_end: 1179}
`

const detailsJSON = `{"details": {"sena-1": {"biography": "Founder of the Sena dynasty."}}}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportHandler_Handle_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "dynasties.yaml", dynastiesYAML)
	jsonFile := writeFile(t, dir, "details.json", detailsJSON)

	handler := NewImportHandler(services.NewImportService())
	result, err := handler.Handle(t.Context(), []string{yamlFile, jsonFile}, ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{yamlFile, jsonFile}, result.Files)
	assert.Equal(t, 1, result.Dynasties)
	assert.Equal(t, 1, result.Rulers)
	assert.Equal(t, 1, result.Details)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 8, result.Errors[0].Line)
	assert.Equal(t, "religion", result.Errors[0].Field)
	assert.Equal(t, "Sena Dynasty", result.Catalog.Dynasties[0].Rulers[0].Dynasty)
}

func TestImportHandler_Handle_Strict(t *testing.T) {
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "dynasties.yaml", dynastiesYAML)

	handler := NewImportHandler(services.NewImportService())
	_, err := handler.Handle(t.Context(), []string{yamlFile}, ImportOptions{Strict: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hinduism")
}

func TestImportHandler_Handle_ExplicitFormat(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "catalog.txt", detailsJSON)

	handler := NewImportHandler(services.NewImportService())
	result, err := handler.Handle(t.Context(), []string{file}, ImportOptions{Format: "json"})

	require.NoError(t, err)
	// The detail references a ruler that isn't in this file.
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "details.sena-1", result.Errors[0].Path)
}

func TestImportHandler_Handle_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "notes.txt", "hello")
	broken := writeFile(t, dir, "broken.json", "{")

	tests := []struct {
		name    string
		paths   []string
		wantErr string
	}{
		{name: "no files", paths: nil, wantErr: "no catalog files"},
		{name: "unsupported format", paths: []string{txt}, wantErr: "unsupported format"},
		{name: "missing file", paths: []string{filepath.Join(dir, "absent.yaml")}, wantErr: "opening file"},
		{name: "parse error", paths: []string{broken}, wantErr: "parsing"},
	}

	handler := NewImportHandler(services.NewImportService())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(t.Context(), tt.paths, ImportOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
