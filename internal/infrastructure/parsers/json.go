package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses catalogs from JSON format.
type JSONParser struct{}

// Parse reads a JSON object with "dynasties" and "details" keys.
func (p *JSONParser) Parse(r io.Reader) (*RawCatalog, error) {
	var catalog RawCatalog

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return &catalog, nil
}
