package entities

// End of the catalogued period.
const (
	TimelineEndYear  = 1947
	TimelineEndLabel = "End of Bengal's Royal History"
)

// TimelineEntry is one dynasty on the timeline with its rulers in succession order.
type TimelineEntry struct {
	Dynasty Dynasty `json:"dynasty"`
	Rulers  []Ruler `json:"rulers"`
}

// EndMarker closes the timeline for display.
type EndMarker struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
}

// String renders the label followed by the formatted year.
func (m EndMarker) String() string {
	return m.Label + " — " + FormatYear(m.Year)
}

// Timeline lists dynasties chronologically, followed by the end marker.
type Timeline struct {
	Entries []TimelineEntry `json:"entries"`
	End     EndMarker       `json:"end"`
}

// Stats summarises the catalog.
type Stats struct {
	Rulers       int `json:"rulers"`
	Dynasties    int `json:"dynasties"`
	Eras         int `json:"eras"`
	EarliestYear int `json:"earliest_year"`
	LatestYear   int `json:"latest_year"`
	SpanYears    int `json:"span_years"`
}
