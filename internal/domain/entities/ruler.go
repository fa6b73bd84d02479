// Package entities contains core domain data structures.
package entities

import "strconv"

// Ruler is a single monarch record. Rulers are immutable once loaded.
type Ruler struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Dynasty    string   `json:"dynasty"` // Display name of the owning dynasty
	Era        Era      `json:"era"`
	Religion   Religion `json:"religion"`
	ReignStart int      `json:"reign_start"`
	ReignEnd   int      `json:"reign_end"`
	Notes      string   `json:"notes,omitempty"`
}

// ReignYears returns the length of the reign in years.
// Start and end are not guaranteed to be ordered, so the absolute difference is used.
func (r Ruler) ReignYears() int {
	return absInt(r.ReignEnd - r.ReignStart)
}

// Reign renders the reign span as two formatted years joined by an em dash.
func (r Ruler) Reign() string {
	return FormatYear(r.ReignStart) + " — " + FormatYear(r.ReignEnd)
}

// Dynasty is an ordered collection of rulers sharing a lineage.
type Dynasty struct {
	Name      string  `json:"name"`
	Era       Era     `json:"era"`
	StartYear int     `json:"start_year"`
	EndYear   int     `json:"end_year"`
	Rulers    []Ruler `json:"rulers"` // Succession order
}

// Span returns the number of years the dynasty lasted.
func (d Dynasty) Span() int {
	return absInt(d.EndYear - d.StartYear)
}

// Period renders the dynasty's start and end years.
func (d Dynasty) Period() string {
	return FormatYear(d.StartYear) + " — " + FormatYear(d.EndYear)
}

// Catalog is the validated, read-only data set handed to the services.
type Catalog struct {
	Dynasties []Dynasty
	Details   map[string]Detail // Keyed by ruler ID
}

// FormatYear renders a signed year, negative years being BCE.
func FormatYear(year int) string {
	if year < 0 {
		return strconv.Itoa(-year) + " BCE"
	}
	return strconv.Itoa(year) + " CE"
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
