package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/services"
)

// ErrInvalidParams is returned when view parameters fall outside their enumerations.
var ErrInvalidParams = errors.New("invalid view parameters")

// ViewHandler builds the grouped ruler explorer view.
type ViewHandler struct {
	catalog *services.CatalogService
	query   *services.QueryService
}

// NewViewHandler creates a new view handler.
func NewViewHandler(catalog *services.CatalogService, query *services.QueryService) *ViewHandler {
	return &ViewHandler{
		catalog: catalog,
		query:   query,
	}
}

// ViewResult contains a built view and its counts.
type ViewResult struct {
	Params entities.ViewParams `json:"params"`
	Groups []entities.Group    `json:"groups"`
	Shown  int                 `json:"shown"`
	Total  int                 `json:"total"`
}

// Summary returns the "Showing N of M rulers" line.
func (r *ViewResult) Summary() string {
	return fmt.Sprintf("Showing %d of %d rulers", r.Shown, r.Total)
}

// Rulers flattens the result in display order.
func (r *ViewResult) Rulers() []entities.Ruler {
	return entities.View{Groups: r.Groups}.Rulers()
}

// Handle builds the view for params over every ruler in the catalog.
func (h *ViewHandler) Handle(_ context.Context, params entities.ViewParams) (*ViewResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	all := h.catalog.AllRulers()
	view := h.query.BuildView(all, params)

	return &ViewResult{
		Params: params,
		Groups: view.Groups,
		Shown:  view.Len(),
		Total:  len(all),
	}, nil
}

// HandleDetails lists rulers for the detail browser: search only, ordered by reign start.
func (h *ViewHandler) HandleDetails(ctx context.Context, search string) (*ViewResult, error) {
	params := entities.ViewParams{
		Search:    search,
		GroupBy:   entities.GroupNone,
		SortBy:    entities.SortByReignStart,
		SortOrder: entities.SortAsc,
	}
	return h.Handle(ctx, params)
}

func validateParams(p entities.ViewParams) error {
	if !p.GroupBy.IsValid() {
		return fmt.Errorf("%w: group-by %q", ErrInvalidParams, p.GroupBy)
	}
	if !p.SortBy.IsValid() {
		return fmt.Errorf("%w: sort key %q", ErrInvalidParams, p.SortBy)
	}
	if !p.SortOrder.IsValid() {
		return fmt.Errorf("%w: sort order %q", ErrInvalidParams, p.SortOrder)
	}
	if era, ok := p.Era.Value(); ok && !era.IsValid() {
		return fmt.Errorf("%w: era %q", ErrInvalidParams, era)
	}
	if religion, ok := p.Religion.Value(); ok && !religion.IsValid() {
		return fmt.Errorf("%w: religion %q", ErrInvalidParams, religion)
	}
	return nil
}
