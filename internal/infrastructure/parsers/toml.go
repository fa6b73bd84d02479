package parsers

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser parses catalogs from TOML format.
//
//	[[dynasties]]
//	name = "Pala Empire"
//	era = "Post-Classical"
//
//	[[dynasties.rulers]]
//	id = "pala-1"
type TOMLParser struct{}

// Parse reads a TOML document with "dynasties" arrays and a "details" table.
func (p *TOMLParser) Parse(r io.Reader) (*RawCatalog, error) {
	var catalog RawCatalog

	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	return &catalog, nil
}
