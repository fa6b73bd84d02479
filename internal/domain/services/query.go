package services

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ersonp/regnal/internal/domain/entities"
)

// QueryService builds filtered, sorted and grouped views of rulers.
type QueryService struct {
	lang language.Tag
}

// NewQueryService creates a query service that collates names in English.
func NewQueryService() *QueryService {
	return &QueryService{lang: language.English}
}

// BuildView runs filter, then sort, then group. The input slice is not modified.
func (s *QueryService) BuildView(rulers []entities.Ruler, params entities.ViewParams) entities.View {
	filtered := s.FilterRulers(rulers, params)
	sorted := s.SortRulers(filtered, params.SortBy, params.SortOrder)
	return s.GroupRulers(sorted, params.GroupBy)
}

// FilterRulers keeps rulers whose name or dynasty contains the search text
// (case-insensitive) and whose era and religion match the filters.
func (s *QueryService) FilterRulers(rulers []entities.Ruler, params entities.ViewParams) []entities.Ruler {
	search := strings.ToLower(params.Search)
	result := make([]entities.Ruler, 0, len(rulers))
	for _, r := range rulers {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Dynasty), search) {
			continue
		}
		if !params.Era.Matches(r.Era) || !params.Religion.Matches(r.Religion) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// SortRulers returns a stably sorted copy. Equal keys keep their input order
// in both directions. Unknown keys leave the order unchanged.
func (s *QueryService) SortRulers(rulers []entities.Ruler, by entities.SortBy, order entities.SortOrder) []entities.Ruler {
	sorted := slices.Clone(rulers)

	// Collators hold scratch buffers, so each call gets its own.
	col := collate.New(s.lang)
	compare := compareRulers(col, by)
	if order == entities.SortDesc {
		asc := compare
		compare = func(a, b entities.Ruler) int { return asc(b, a) }
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

func compareRulers(col *collate.Collator, by entities.SortBy) func(a, b entities.Ruler) int {
	switch by {
	case entities.SortByName:
		return func(a, b entities.Ruler) int { return col.CompareString(a.Name, b.Name) }
	case entities.SortByDynasty:
		return func(a, b entities.Ruler) int { return col.CompareString(a.Dynasty, b.Dynasty) }
	case entities.SortByReignStart:
		return func(a, b entities.Ruler) int { return cmp.Compare(a.ReignStart, b.ReignStart) }
	default:
		return func(_, _ entities.Ruler) int { return 0 }
	}
}

// GroupRulers partitions sorted rulers by the group key. Groups appear in
// order of first occurrence and keep the rulers' order. GroupNone, or an
// unknown key, yields a single "All Rulers" group that is present even when empty.
func (s *QueryService) GroupRulers(rulers []entities.Ruler, by entities.GroupBy) entities.View {
	if by == entities.GroupNone || !by.IsValid() {
		all := entities.Group{Label: entities.AllRulersLabel, Rulers: append([]entities.Ruler{}, rulers...)}
		return entities.View{Groups: []entities.Group{all}}
	}

	groups := []entities.Group{}
	index := make(map[string]int)
	for _, r := range rulers {
		key := groupKey(r, by)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, entities.Group{Label: key})
		}
		groups[i].Rulers = append(groups[i].Rulers, r)
	}
	return entities.View{Groups: groups}
}

func groupKey(r entities.Ruler, by entities.GroupBy) string {
	switch by {
	case entities.GroupByEra:
		return string(r.Era)
	case entities.GroupByReligion:
		return string(r.Religion)
	default:
		return r.Dynasty
	}
}
