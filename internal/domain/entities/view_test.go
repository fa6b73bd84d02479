package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Run("zero value accepts everything", func(t *testing.T) {
		var f Filter[Era]
		assert.True(t, f.IsAll())
		assert.True(t, f.Matches(EraAncient))
		assert.True(t, f.Matches(EraColonial))
		assert.Equal(t, "all", f.String())
	})

	t.Run("only accepts its value", func(t *testing.T) {
		f := Only(ReligionMuslim)
		assert.False(t, f.IsAll())
		assert.True(t, f.Matches(ReligionMuslim))
		assert.False(t, f.Matches(ReligionHindu))

		v, ok := f.Value()
		assert.True(t, ok)
		assert.Equal(t, ReligionMuslim, v)
		assert.Equal(t, "Muslim", f.String())
	})
}

func TestParseEraFilter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isAll   bool
		value   Era
		wantErr bool
	}{
		{name: "empty is all", input: "", isAll: true},
		{name: "all keyword", input: "all", isAll: true},
		{name: "all uppercase", input: "ALL", isAll: true},
		{name: "era value", input: "classical", value: EraClassical},
		{name: "invalid value", input: "Bronze", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseEraFilter(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isAll, f.IsAll())
			if !tt.isAll {
				v, _ := f.Value()
				assert.Equal(t, tt.value, v)
			}
		})
	}
}

func TestParseReligionFilter(t *testing.T) {
	f, err := ParseReligionFilter("Mixed")
	require.NoError(t, err)
	assert.True(t, f.Matches(ReligionMixed))
	assert.False(t, f.Matches(ReligionUnknown))

	_, err = ParseReligionFilter("Pagan")
	assert.Error(t, err)
}

func TestViewParams_MarshalJSON(t *testing.T) {
	params := DefaultViewParams()
	params.Religion = Only(ReligionBuddhist)

	data, err := json.Marshal(params)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "all", decoded["era"])
	assert.Equal(t, "Buddhist", decoded["religion"])
	assert.Equal(t, "dynasty", decoded["group_by"])
	assert.Equal(t, "reignStart", decoded["sort_by"])
	assert.Equal(t, "asc", decoded["sort_order"])
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		input    string
		expected SortBy
	}{
		{input: "name", expected: SortByName},
		{input: "reignStart", expected: SortByReignStart},
		{input: "reignstart", expected: SortByReignStart},
		{input: "reign", expected: SortByReignStart},
		{input: "reign_start", expected: SortByReignStart},
		{input: "Dynasty", expected: SortByDynasty},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortBy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseSortBy("era")
	assert.Error(t, err)
}

func TestParseGroupByAndOrder(t *testing.T) {
	g, err := ParseGroupBy("Religion")
	require.NoError(t, err)
	assert.Equal(t, GroupByReligion, g)

	_, err = ParseGroupBy("century")
	assert.Error(t, err)

	o, err := ParseSortOrder("DESC")
	require.NoError(t, err)
	assert.Equal(t, SortDesc, o)

	_, err = ParseSortOrder("up")
	assert.Error(t, err)
}

func TestNextSort(t *testing.T) {
	tests := []struct {
		name          string
		current       SortBy
		order         SortOrder
		requested     SortBy
		expectedBy    SortBy
		expectedOrder SortOrder
	}{
		{
			name:    "same column flips asc to desc",
			current: SortByName, order: SortAsc, requested: SortByName,
			expectedBy: SortByName, expectedOrder: SortDesc,
		},
		{
			name:    "same column flips desc to asc",
			current: SortByName, order: SortDesc, requested: SortByName,
			expectedBy: SortByName, expectedOrder: SortAsc,
		},
		{
			name:    "new column resets to asc",
			current: SortByReignStart, order: SortDesc, requested: SortByDynasty,
			expectedBy: SortByDynasty, expectedOrder: SortAsc,
		},
		{
			name:    "new column from asc stays asc",
			current: SortByReignStart, order: SortAsc, requested: SortByName,
			expectedBy: SortByName, expectedOrder: SortAsc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			by, order := NextSort(tt.current, tt.order, tt.requested)
			assert.Equal(t, tt.expectedBy, by)
			assert.Equal(t, tt.expectedOrder, order)
		})
	}
}

func TestNextSort_Laws(t *testing.T) {
	for _, by := range validSortBys {
		for _, order := range validSortOrders {
			for _, requested := range validSortBys {
				// Toggling the same column twice restores the original order.
				b1, o1 := NextSort(by, order, by)
				b2, o2 := NextSort(b1, o1, by)
				assert.Equal(t, by, b2)
				assert.Equal(t, order, o2)

				// Toggling a different column always yields ascending.
				if requested != by {
					b, o := NextSort(by, order, requested)
					assert.Equal(t, requested, b)
					assert.Equal(t, SortAsc, o)
				}
			}
		}
	}
}

func TestViewParams_ToggleSort(t *testing.T) {
	params := DefaultViewParams()

	next := params.ToggleSort(SortByName)
	assert.Equal(t, SortByName, next.SortBy)
	assert.Equal(t, SortAsc, next.SortOrder)

	// Original is untouched.
	assert.Equal(t, SortByReignStart, params.SortBy)

	next = next.ToggleSort(SortByName)
	assert.Equal(t, SortDesc, next.SortOrder)
}

func TestView_Helpers(t *testing.T) {
	a := Ruler{ID: "a"}
	b := Ruler{ID: "b"}
	c := Ruler{ID: "c"}
	v := View{Groups: []Group{
		{Label: "X", Rulers: []Ruler{a, b}},
		{Label: "Y", Rulers: []Ruler{c}},
	}}

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []Ruler{a, b, c}, v.Rulers())

	g, ok := v.Group("Y")
	assert.True(t, ok)
	assert.Equal(t, []Ruler{c}, g.Rulers)

	_, ok = v.Group("Z")
	assert.False(t, ok)
}
