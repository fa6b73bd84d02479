// Package parsers provides parsers for loading ruler catalogs from various formats.
package parsers

import (
	"io"
	"maps"
	"path/filepath"
	"strings"
)

// RawCatalog is a catalog parsed from an external source before validation.
type RawCatalog struct {
	Dynasties []RawDynasty         `json:"dynasties" yaml:"dynasties" toml:"dynasties"`
	Details   map[string]RawDetail `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
	Source    string               `json:"-" yaml:"-" toml:"-"` // File the catalog was read from (set by caller)
}

// RawDynasty is an unvalidated dynasty with its rulers in authored order.
type RawDynasty struct {
	Name      string     `json:"name" yaml:"name" toml:"name"`
	Era       string     `json:"era" yaml:"era" toml:"era"`
	StartYear int        `json:"start_year" yaml:"start_year" toml:"start_year"`
	EndYear   int        `json:"end_year" yaml:"end_year" toml:"end_year"`
	Rulers    []RawRuler `json:"rulers" yaml:"rulers" toml:"rulers"`
	LineNum   int        `json:"-" yaml:"-" toml:"-"` // Line number in source file (set by parser when known)
}

// RawRuler is an unvalidated ruler. Dynasty and Era may be empty, in which
// case they are inherited from the owning dynasty.
type RawRuler struct {
	ID         string `json:"id" yaml:"id" toml:"id"`
	Name       string `json:"name" yaml:"name" toml:"name"`
	Dynasty    string `json:"dynasty,omitempty" yaml:"dynasty,omitempty" toml:"dynasty,omitempty"`
	Era        string `json:"era,omitempty" yaml:"era,omitempty" toml:"era,omitempty"`
	Religion   string `json:"religion" yaml:"religion" toml:"religion"`
	ReignStart int    `json:"reign_start" yaml:"reign_start" toml:"reign_start"`
	ReignEnd   int    `json:"reign_end" yaml:"reign_end" toml:"reign_end"`
	Notes      string `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	LineNum    int    `json:"-" yaml:"-" toml:"-"`
}

// RawDetail is an unvalidated curated detail record.
type RawDetail struct {
	Biography        string   `json:"biography" yaml:"biography" toml:"biography"`
	Achievements     []string `json:"achievements,omitempty" yaml:"achievements,omitempty" toml:"achievements,omitempty"`
	Sources          []string `json:"sources,omitempty" yaml:"sources,omitempty" toml:"sources,omitempty"`
	SuggestedReading string   `json:"suggested_reading,omitempty" yaml:"suggested_reading,omitempty" toml:"suggested_reading,omitempty"`
}

// Parser defines the interface for parsing catalogs from various formats.
type Parser interface {
	Parse(r io.Reader) (*RawCatalog, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml", "toml", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	case "toml":
		return &TOMLParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return nil
	}
	return ForFormat(ext)
}

// Merge combines catalogs in order. Dynasties are concatenated; details are
// overlaid so a later catalog wins for the same ruler id.
func Merge(catalogs ...*RawCatalog) *RawCatalog {
	merged := &RawCatalog{Details: make(map[string]RawDetail)}
	var sources []string
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		merged.Dynasties = append(merged.Dynasties, c.Dynasties...)
		maps.Copy(merged.Details, c.Details)
		if c.Source != "" {
			sources = append(sources, c.Source)
		}
	}
	merged.Source = strings.Join(sources, ",")
	return merged
}
