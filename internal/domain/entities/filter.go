package entities

import (
	"fmt"
	"strings"
)

// FilterAll is the textual form of a filter that accepts every value.
const FilterAll = "all"

// Filter restricts a closed enumeration to a single value, or accepts all of them.
// The zero value accepts everything.
type Filter[T comparable] struct {
	value T
	set   bool
}

// All returns a filter that accepts every value.
func All[T comparable]() Filter[T] {
	return Filter[T]{}
}

// Only returns a filter that accepts v alone.
func Only[T comparable](v T) Filter[T] {
	return Filter[T]{value: v, set: true}
}

// IsAll reports whether the filter accepts every value.
func (f Filter[T]) IsAll() bool {
	return !f.set
}

// Value returns the selected value, if any.
func (f Filter[T]) Value() (T, bool) {
	return f.value, f.set
}

// Matches reports whether v passes the filter.
func (f Filter[T]) Matches(v T) bool {
	return !f.set || f.value == v
}

// String returns "all" or the selected value.
func (f Filter[T]) String() string {
	if !f.set {
		return FilterAll
	}
	return fmt.Sprint(f.value)
}

// MarshalText implements encoding.TextMarshaler.
func (f Filter[T]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseEraFilter parses "all" (or an empty string) or an era name.
func ParseEraFilter(s string) (Filter[Era], error) {
	if isAllToken(s) {
		return All[Era](), nil
	}
	era, err := ParseEra(s)
	if err != nil {
		return Filter[Era]{}, err
	}
	return Only(era), nil
}

// ParseReligionFilter parses "all" (or an empty string) or a religion name.
func ParseReligionFilter(s string) (Filter[Religion], error) {
	if isAllToken(s) {
		return All[Religion](), nil
	}
	religion, err := ParseReligion(s)
	if err != nil {
		return Filter[Religion]{}, err
	}
	return Only(religion), nil
}

func isAllToken(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, FilterAll)
}
