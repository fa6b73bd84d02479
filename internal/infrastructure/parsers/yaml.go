package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses catalogs from YAML format and records source line numbers.
type YAMLParser struct{}

// Parse reads a YAML document with "dynasties" and "details" keys.
func (p *YAMLParser) Parse(r io.Reader) (*RawCatalog, error) {
	var catalog RawCatalog

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return &catalog, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &catalog, nil
}

// UnmarshalYAML decodes a dynasty and keeps the line it started on.
func (d *RawDynasty) UnmarshalYAML(node *yaml.Node) error {
	type plain RawDynasty
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = RawDynasty(p)
	d.LineNum = node.Line
	return nil
}

// UnmarshalYAML decodes a ruler and keeps the line it started on.
func (r *RawRuler) UnmarshalYAML(node *yaml.Node) error {
	type plain RawRuler
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = RawRuler(p)
	r.LineNum = node.Line
	return nil
}
