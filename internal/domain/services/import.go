package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/infrastructure/parsers"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	Strict bool // Fail the whole import on any invalid record
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Path    string // Location within the catalog, e.g. dynasties[2].rulers[0]
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	default:
		return e.Message
	}
}

// ImportResult contains the validated catalog and what was rejected.
type ImportResult struct {
	Catalog   *entities.Catalog
	Dynasties int
	Rulers    int
	Details   int
	Skipped   int
	Errors    []ImportError
}

// ImportService validates raw catalogs and converts them to domain entities.
type ImportService struct{}

// NewImportService creates a new import service.
func NewImportService() *ImportService {
	return &ImportService{}
}

// Import validates a raw catalog. Invalid records are reported and skipped;
// with opts.Strict any invalid record fails the import.
func (s *ImportService) Import(ctx context.Context, raw *parsers.RawCatalog, opts ImportOptions) (*ImportResult, error) {
	if raw == nil {
		return nil, errors.New("no catalog to import")
	}

	v := &catalogValidator{
		dynastyNames: make(map[string]bool),
		rulerIDs:     make(map[string]bool),
	}
	catalog := &entities.Catalog{Details: make(map[string]entities.Detail)}

	for i := range raw.Dynasties {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("importing catalog: %w", err)
		}
		if d, ok := v.dynasty(&raw.Dynasties[i], i); ok {
			catalog.Dynasties = append(catalog.Dynasties, d)
		}
	}

	// Sorted for deterministic error order.
	ids := make([]string, 0, len(raw.Details))
	for id := range raw.Details {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if d, ok := v.detail(id, raw.Details[id]); ok {
			catalog.Details[id] = d
		}
	}

	result := &ImportResult{
		Catalog:   catalog,
		Dynasties: len(catalog.Dynasties),
		Rulers:    len(v.rulerIDs),
		Details:   len(catalog.Details),
		Skipped:   v.skipped,
		Errors:    v.errors,
	}

	if opts.Strict && len(v.errors) > 0 {
		errs := make([]error, len(v.errors))
		for i := range v.errors {
			errs[i] = v.errors[i]
		}
		return result, fmt.Errorf("catalog has %d invalid records: %w", len(v.errors), errors.Join(errs...))
	}

	return result, nil
}

// catalogValidator accumulates errors across one import.
type catalogValidator struct {
	dynastyNames map[string]bool
	rulerIDs     map[string]bool
	errors       []ImportError
	skipped      int
}

func (v *catalogValidator) reject(err ImportError) {
	v.errors = append(v.errors, err)
	v.skipped++
}

// dynasty validates a dynasty and its rulers. An invalid dynasty is skipped whole.
func (v *catalogValidator) dynasty(raw *parsers.RawDynasty, index int) (entities.Dynasty, bool) {
	path := fmt.Sprintf("dynasties[%d]", index)
	line := raw.LineNum

	if raw.Name == "" {
		v.reject(ImportError{Line: line, Path: path, Field: "name", Message: "missing required field: name"})
		return entities.Dynasty{}, false
	}
	if v.dynastyNames[raw.Name] {
		v.reject(ImportError{
			Line: line, Path: path, Field: "name", Value: raw.Name,
			Message: fmt.Sprintf("duplicate dynasty %q", raw.Name),
		})
		return entities.Dynasty{}, false
	}
	era, err := entities.ParseEra(raw.Era)
	if err != nil {
		v.reject(ImportError{Line: line, Path: path, Field: "era", Value: raw.Era, Message: err.Error()})
		return entities.Dynasty{}, false
	}
	v.dynastyNames[raw.Name] = true

	d := entities.Dynasty{
		Name:      raw.Name,
		Era:       era,
		StartYear: raw.StartYear,
		EndYear:   raw.EndYear,
		Rulers:    make([]entities.Ruler, 0, len(raw.Rulers)),
	}
	for j := range raw.Rulers {
		rulerPath := fmt.Sprintf("%s.rulers[%d]", path, j)
		if r, ok := v.ruler(&raw.Rulers[j], &d, rulerPath); ok {
			d.Rulers = append(d.Rulers, r)
		}
	}
	return d, true
}

// ruler validates a ruler against its owning dynasty and fills inherited fields.
func (v *catalogValidator) ruler(raw *parsers.RawRuler, owner *entities.Dynasty, path string) (entities.Ruler, bool) {
	line := raw.LineNum

	if raw.ID == "" {
		v.reject(ImportError{Line: line, Path: path, Field: "id", Message: "missing required field: id"})
		return entities.Ruler{}, false
	}
	if raw.Name == "" {
		v.reject(ImportError{Line: line, Path: path, Field: "name", Value: raw.ID, Message: "missing required field: name"})
		return entities.Ruler{}, false
	}
	if v.rulerIDs[raw.ID] {
		v.reject(ImportError{
			Line: line, Path: path, Field: "id", Value: raw.ID,
			Message: fmt.Sprintf("duplicate ruler id %q", raw.ID),
		})
		return entities.Ruler{}, false
	}
	if raw.Dynasty != "" && raw.Dynasty != owner.Name {
		v.reject(ImportError{
			Line: line, Path: path, Field: "dynasty", Value: raw.Dynasty,
			Message: fmt.Sprintf("ruler %q declares dynasty %q but is listed under %q", raw.ID, raw.Dynasty, owner.Name),
		})
		return entities.Ruler{}, false
	}

	era := owner.Era
	if raw.Era != "" {
		parsed, err := entities.ParseEra(raw.Era)
		if err != nil {
			v.reject(ImportError{Line: line, Path: path, Field: "era", Value: raw.Era, Message: err.Error()})
			return entities.Ruler{}, false
		}
		era = parsed
	}

	religion, err := entities.ParseReligion(raw.Religion)
	if err != nil {
		v.reject(ImportError{Line: line, Path: path, Field: "religion", Value: raw.Religion, Message: err.Error()})
		return entities.Ruler{}, false
	}

	v.rulerIDs[raw.ID] = true
	return entities.Ruler{
		ID:         raw.ID,
		Name:       raw.Name,
		Dynasty:    owner.Name,
		Era:        era,
		Religion:   religion,
		ReignStart: raw.ReignStart,
		ReignEnd:   raw.ReignEnd,
		Notes:      raw.Notes,
	}, true
}

// detail validates a curated record. It must describe an imported ruler.
func (v *catalogValidator) detail(id string, raw parsers.RawDetail) (entities.Detail, bool) {
	path := "details." + id

	if raw.Biography == "" {
		v.reject(ImportError{Path: path, Field: "biography", Value: id, Message: "missing required field: biography"})
		return entities.Detail{}, false
	}
	if !v.rulerIDs[id] {
		v.reject(ImportError{
			Path: path, Field: "id", Value: id,
			Message: fmt.Sprintf("detail for unknown ruler %q", id),
		})
		return entities.Detail{}, false
	}

	return entities.Detail{
		Biography:        raw.Biography,
		Achievements:     raw.Achievements,
		Sources:          raw.Sources,
		SuggestedReading: raw.SuggestedReading,
	}, true
}
