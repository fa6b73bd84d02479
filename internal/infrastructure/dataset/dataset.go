// Package dataset embeds the built-in Rulers of Bengal catalog.
package dataset

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/ersonp/regnal/internal/infrastructure/parsers"
)

// Files holding the built-in catalog, in load order.
const (
	DynastiesFile = "data/dynasties.yaml"
	DetailsFile   = "data/details.json"
)

//go:embed data/dynasties.yaml data/details.json
var files embed.FS

// Default parses and merges the embedded catalog files.
func Default() (*parsers.RawCatalog, error) {
	var catalogs []*parsers.RawCatalog
	for _, name := range []string{DynastiesFile, DetailsFile} {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded %s: %w", name, err)
		}

		parser := parsers.ForFile(name)
		if parser == nil {
			return nil, fmt.Errorf("no parser for embedded %s", name)
		}

		raw, err := parser.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing embedded %s: %w", name, err)
		}
		raw.Source = "embedded:" + name
		catalogs = append(catalogs, raw)
	}

	return parsers.Merge(catalogs...), nil
}
