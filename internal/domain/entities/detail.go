package entities

// Detail is the curated biography of a ruler.
type Detail struct {
	Biography        string   `json:"biography"`
	Achievements     []string `json:"achievements,omitempty"`
	Sources          []string `json:"sources,omitempty"`
	SuggestedReading string   `json:"suggested_reading,omitempty"`
}

// FallbackReading is suggested for rulers without a curated detail.
const FallbackReading = "History of Bengal, Vol. 1-2 by R.C. Majumdar"

// DefaultDetail builds the detail shown when no curated record exists for a ruler.
func DefaultDetail(rulerName string) Detail {
	return Detail{
		Biography: "No credible historical information is currently available for " + rulerName +
			". This ruler is mentioned in historical records but detailed accounts of their reign" +
			" have not survived or have yet to be discovered through archaeological research.",
		SuggestedReading: FallbackReading,
	}
}
