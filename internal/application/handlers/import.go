package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ersonp/regnal/internal/domain/services"
	"github.com/ersonp/regnal/internal/infrastructure/parsers"
)

// ImportHandler loads and validates catalog files.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "json", "yaml", "toml", "csv", or "auto"
	Strict bool   // Fail on any invalid record
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Files []string
	*services.ImportResult
}

// Handle parses every file, merges them in order and validates the result.
func (h *ImportHandler) Handle(ctx context.Context, paths []string, opts ImportOptions) (*ImportResult, error) {
	if len(paths) == 0 {
		return nil, errors.New("no catalog files given")
	}

	catalogs := make([]*parsers.RawCatalog, 0, len(paths))
	for _, path := range paths {
		raw, err := parseFile(path, opts.Format)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, raw)
	}

	result, err := h.HandleRaw(ctx, parsers.Merge(catalogs...), opts)
	if err != nil {
		return nil, err
	}
	result.Files = paths
	return result, nil
}

// HandleRaw validates an already parsed catalog.
func (h *ImportHandler) HandleRaw(ctx context.Context, raw *parsers.RawCatalog, opts ImportOptions) (*ImportResult, error) {
	serviceResult, err := h.service.Import(ctx, raw, services.ImportOptions{Strict: opts.Strict})
	if err != nil {
		return nil, fmt.Errorf("importing catalog: %w", err)
	}
	return &ImportResult{ImportResult: serviceResult}, nil
}

func parseFile(path, format string) (*parsers.RawCatalog, error) {
	var parser parsers.Parser
	if format == "" || format == "auto" {
		parser = parsers.ForFile(path)
	} else {
		parser = parsers.ForFormat(format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raw, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	raw.Source = path

	return raw, nil
}
