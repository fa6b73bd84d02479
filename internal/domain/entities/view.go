package entities

import (
	"fmt"
	"strings"
)

// AllRulersLabel labels the single group produced when no grouping is selected.
const AllRulersLabel = "All Rulers"

// GroupBy selects the field rulers are partitioned by.
type GroupBy string

// Grouping keys.
const (
	GroupNone       GroupBy = "none"
	GroupByDynasty  GroupBy = "dynasty"
	GroupByEra      GroupBy = "era"
	GroupByReligion GroupBy = "religion"
)

// SortBy selects the field rulers are ordered by.
type SortBy string

// Sort keys.
const (
	SortByName       SortBy = "name"
	SortByReignStart SortBy = "reignStart"
	SortByDynasty    SortBy = "dynasty"
)

// SortOrder is the direction of a sort.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

var (
	validGroupBys   = []GroupBy{GroupNone, GroupByDynasty, GroupByEra, GroupByReligion}
	validSortBys    = []SortBy{SortByName, SortByReignStart, SortByDynasty}
	validSortOrders = []SortOrder{SortAsc, SortDesc}
)

// IsValid reports whether g is a known grouping key.
func (g GroupBy) IsValid() bool {
	for _, v := range validGroupBys {
		if g == v {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known sort key.
func (s SortBy) IsValid() bool {
	for _, v := range validSortBys {
		if s == v {
			return true
		}
	}
	return false
}

// IsValid reports whether o is a known sort direction.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// Flip returns the opposite direction.
func (o SortOrder) Flip() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// ParseGroupBy parses a grouping key, ignoring case.
func ParseGroupBy(s string) (GroupBy, error) {
	s = strings.TrimSpace(s)
	for _, v := range validGroupBys {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid group-by %q, valid values: %v", s, validGroupBys)
}

// ParseSortBy parses a sort key. "reign" and "reign_start" are accepted for reignStart.
func ParseSortBy(s string) (SortBy, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "reign", "reign_start", "reign-start":
		return SortByReignStart, nil
	}
	for _, v := range validSortBys {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q, valid values: %v", s, validSortBys)
}

// ParseSortOrder parses a sort direction, ignoring case.
func ParseSortOrder(s string) (SortOrder, error) {
	s = strings.TrimSpace(s)
	for _, v := range validSortOrders {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid sort order %q, valid values: %v", s, validSortOrders)
}

// ViewParams fully determine the result of a catalog query.
type ViewParams struct {
	Search    string           `json:"search"`
	Era       Filter[Era]      `json:"era"`
	Religion  Filter[Religion] `json:"religion"`
	GroupBy   GroupBy          `json:"group_by"`
	SortBy    SortBy           `json:"sort_by"`
	SortOrder SortOrder        `json:"sort_order"`
}

// DefaultViewParams returns the explorer's initial state: grouped by dynasty,
// ordered by reign start.
func DefaultViewParams() ViewParams {
	return ViewParams{
		Era:       All[Era](),
		Religion:  All[Religion](),
		GroupBy:   GroupByDynasty,
		SortBy:    SortByReignStart,
		SortOrder: SortAsc,
	}
}

// ToggleSort returns params sorted by column; see NextSort.
func (p ViewParams) ToggleSort(column SortBy) ViewParams {
	p.SortBy, p.SortOrder = NextSort(p.SortBy, p.SortOrder, column)
	return p
}

// NextSort computes the sort state after the user asks to sort by requested.
// Selecting a new column resets to ascending; selecting the current one flips the order.
func NextSort(current SortBy, order SortOrder, requested SortBy) (SortBy, SortOrder) {
	if current != requested {
		return requested, SortAsc
	}
	return current, order.Flip()
}

// Group is a labelled, ordered subset of a view.
type Group struct {
	Label  string  `json:"label"`
	Rulers []Ruler `json:"rulers"`
}

// View is the grouped result of a query. Groups keep their first-occurrence order.
type View struct {
	Groups []Group `json:"groups"`
}

// Len returns the number of rulers across all groups.
func (v View) Len() int {
	n := 0
	for _, g := range v.Groups {
		n += len(g.Rulers)
	}
	return n
}

// Rulers flattens the view in group order.
func (v View) Rulers() []Ruler {
	out := make([]Ruler, 0, v.Len())
	for _, g := range v.Groups {
		out = append(out, g.Rulers...)
	}
	return out
}

// Group returns the group with the given label.
func (v View) Group(label string) (Group, bool) {
	for _, g := range v.Groups {
		if g.Label == label {
			return g, true
		}
	}
	return Group{}, false
}
