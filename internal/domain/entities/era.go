package entities

import (
	"fmt"
	"strings"
)

// Era is the coarse historical period a ruler or dynasty belongs to.
type Era string

// Known eras, in chronological order.
const (
	EraAncient       Era = "Ancient"
	EraClassical     Era = "Classical"
	EraPostClassical Era = "Post-Classical"
	EraMedieval      Era = "Medieval"
	EraColonial      Era = "Colonial"
)

var allEras = []Era{EraAncient, EraClassical, EraPostClassical, EraMedieval, EraColonial}

// AllEras returns every era in chronological order.
func AllEras() []Era {
	out := make([]Era, len(allEras))
	copy(out, allEras)
	return out
}

// IsValid reports whether e is one of the known eras.
func (e Era) IsValid() bool {
	for _, known := range allEras {
		if e == known {
			return true
		}
	}
	return false
}

// StyleKey returns the display styling key for the era.
func (e Era) StyleKey() string {
	if !e.IsValid() {
		return "era-unknown"
	}
	return "era-" + styleSuffix(string(e))
}

// ParseEra parses an era by its display value, ignoring case.
func ParseEra(s string) (Era, error) {
	s = strings.TrimSpace(s)
	for _, known := range allEras {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("invalid era %q, valid eras: %v", s, allEras)
}

// Religion is the religious classification of a ruler.
type Religion string

// Known religions.
const (
	ReligionHindu    Religion = "Hindu"
	ReligionBuddhist Religion = "Buddhist"
	ReligionMuslim   Religion = "Muslim"
	ReligionMixed    Religion = "Mixed"
	ReligionUnknown  Religion = "Unknown"
)

var allReligions = []Religion{ReligionHindu, ReligionBuddhist, ReligionMuslim, ReligionMixed, ReligionUnknown}

// AllReligions returns every religion classification.
func AllReligions() []Religion {
	out := make([]Religion, len(allReligions))
	copy(out, allReligions)
	return out
}

// IsValid reports whether r is one of the known religions.
func (r Religion) IsValid() bool {
	for _, known := range allReligions {
		if r == known {
			return true
		}
	}
	return false
}

// StyleKey returns the display styling key for the religion.
func (r Religion) StyleKey() string {
	if !r.IsValid() {
		return "religion-unknown"
	}
	return "religion-" + styleSuffix(string(r))
}

// ParseReligion parses a religion by its display value, ignoring case.
func ParseReligion(s string) (Religion, error) {
	s = strings.TrimSpace(s)
	for _, known := range allReligions {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("invalid religion %q, valid religions: %v", s, allReligions)
}

func styleSuffix(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}
