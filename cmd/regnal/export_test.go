package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
)

func testViewResult() *handlers.ViewResult {
	return &handlers.ViewResult{
		Params: entities.DefaultViewParams(),
		Groups: []entities.Group{
			{Label: "Maurya Empire", Rulers: []entities.Ruler{
				{ID: "maurya-3", Name: "Ashoka", Dynasty: "Maurya Empire", Era: entities.EraAncient, Religion: entities.ReligionBuddhist, ReignStart: -268, ReignEnd: -232, Notes: "Converted after Kalinga"},
			}},
			{Label: "Pala Empire", Rulers: []entities.Ruler{
				{ID: "pala-1", Name: "Gopala", Dynasty: "Pala Empire", Era: entities.EraPostClassical, Religion: entities.ReligionBuddhist, ReignStart: 750, ReignEnd: 770},
			}},
		},
		Shown: 2,
		Total: 46,
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	err := formatJSON(&buf, testViewResult())
	require.NoError(t, err)

	var parsed struct {
		Params map[string]any `json:"params"`
		Groups []struct {
			Label  string           `json:"label"`
			Rulers []map[string]any `json:"rulers"`
		} `json:"groups"`
		Shown int `json:"shown"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	assert.Equal(t, 2, parsed.Shown)
	assert.Equal(t, 46, parsed.Total)
	assert.Equal(t, "all", parsed.Params["era"])
	assert.Equal(t, "dynasty", parsed.Params["group_by"])
	require.Len(t, parsed.Groups, 2)
	assert.Equal(t, "Maurya Empire", parsed.Groups[0].Label)
	assert.Equal(t, "maurya-3", parsed.Groups[0].Rulers[0]["id"])
	assert.Equal(t, float64(-268), parsed.Groups[0].Rulers[0]["reign_start"])
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	err := formatCSV(&buf, testViewResult().Groups)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "group,id,name,dynasty,era,religion,reign_start,reign_end,notes", lines[0])
	assert.Equal(t, "Maurya Empire,maurya-3,Ashoka,Maurya Empire,Ancient,Buddhist,-268,-232,Converted after Kalinga", lines[1])
	assert.Equal(t, "Pala Empire,pala-1,Gopala,Pala Empire,Post-Classical,Buddhist,750,770,", lines[2])
}

func TestFormatCSV_SpecialCharacters(t *testing.T) {
	groups := []entities.Group{
		{Label: entities.AllRulersLabel, Rulers: []entities.Ruler{
			{ID: "x-1", Name: "Name, with comma", Notes: "value \"quoted\""},
		}},
	}

	var buf bytes.Buffer
	err := formatCSV(&buf, groups)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "\"Name, with comma\"")
	assert.Contains(t, buf.String(), "\"value \"\"quoted\"\"\"")
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := formatMarkdown(&buf, testViewResult())
	require.NoError(t, err)

	result := buf.String()
	assert.Contains(t, result, "# Rulers of Bengal")
	assert.Contains(t, result, "Showing 2 of 46 rulers")
	assert.Contains(t, result, "## Maurya Empire")
	assert.Contains(t, result, "| Name | Dynasty | Reign | Era | Religion |")
	assert.Contains(t, result, "| Ashoka | Maurya Empire | 268 BCE — 232 BCE | Ancient | Buddhist |")
	assert.Contains(t, result, "| Gopala | Pala Empire | 750 CE — 770 CE | Post-Classical | Buddhist |")
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "pipe escaped",
			input:    "value|with|pipes",
			expected: "value\\|with\\|pipes",
		},
		{
			name:     "newline replaced",
			input:    "line1\nline2",
			expected: "line1 line2",
		},
		{
			name:     "no change needed",
			input:    "simple text",
			expected: "simple text",
		},
		{
			name:     "combined",
			input:    "pipe|and\nnewline",
			expected: "pipe\\|and newline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := escapeMarkdown(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, contains(exportFormats, "json"))
	assert.True(t, contains(exportFormats, "sqlite"))
	assert.True(t, contains(listFormats, "cards"))
	assert.False(t, contains(exportFormats, "xml"))
	assert.False(t, contains(exportFormats, ""))
	assert.False(t, contains(exportFormats, "JSON")) // case sensitive
}
