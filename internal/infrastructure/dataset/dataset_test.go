package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	raw, err := Default()
	require.NoError(t, err)

	require.Len(t, raw.Dynasties, 15)
	assert.Equal(t, "Anga Kingdom", raw.Dynasties[0].Name)
	assert.Equal(t, "British Raj", raw.Dynasties[len(raw.Dynasties)-1].Name)

	var rulers int
	ids := make(map[string]bool)
	for _, d := range raw.Dynasties {
		assert.NotEmpty(t, d.Rulers, "dynasty %s has no rulers", d.Name)
		for _, r := range d.Rulers {
			assert.False(t, ids[r.ID], "duplicate ruler id %s", r.ID)
			ids[r.ID] = true
			rulers++
		}
	}
	assert.Equal(t, 46, rulers)

	assert.Len(t, raw.Details, 40)
	for id := range raw.Details {
		assert.True(t, ids[id], "detail %s has no ruler", id)
	}

	assert.Contains(t, raw.Source, "embedded:data/dynasties.yaml")
}

func TestDefault_RecordsYAMLLines(t *testing.T) {
	raw, err := Default()
	require.NoError(t, err)

	assert.Positive(t, raw.Dynasties[0].LineNum)
	assert.Positive(t, raw.Dynasties[0].Rulers[0].LineNum)
}
