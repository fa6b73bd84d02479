package a

import (
	"slices"
	"sort"
	"strings"
)

type ruler struct {
	name  string
	start int
}

type byStart []ruler

func (s byStart) Len() int           { return len(s) }
func (s byStart) Less(i, j int) bool { return s[i].start < s[j].start }
func (s byStart) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func bad(rulers []ruler) {
	sort.Slice(rulers, func(i, j int) bool { return rulers[i].start < rulers[j].start })     // want "sort.Slice is not stable"
	sort.Sort(byStart(rulers))                                                               // want "sort.Sort is not stable"
	slices.SortFunc(rulers, func(a, b ruler) int { return strings.Compare(a.name, b.name) }) // want "slices.SortFunc is not stable"
}

func good(rulers []ruler, years []int) {
	sort.SliceStable(rulers, func(i, j int) bool { return rulers[i].start < rulers[j].start })
	sort.Stable(byStart(rulers))
	slices.SortStableFunc(rulers, func(a, b ruler) int { return strings.Compare(a.name, b.name) })
	sort.IntSlice(years).Sort()
	slices.Sort(years)
}
