package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/services"
)

// ErrRulerNotFound is returned when a ruler id is not in the catalog.
var ErrRulerNotFound = errors.New("ruler not found")

// DetailHandler builds ruler profiles.
type DetailHandler struct {
	catalog *services.CatalogService
	details *services.DetailService
}

// NewDetailHandler creates a new detail handler.
func NewDetailHandler(catalog *services.CatalogService, details *services.DetailService) *DetailHandler {
	return &DetailHandler{
		catalog: catalog,
		details: details,
	}
}

// RulerProfile is a ruler with its resolved detail.
type RulerProfile struct {
	Ruler      entities.Ruler  `json:"ruler"`
	Detail     entities.Detail `json:"detail"`
	Curated    bool            `json:"curated"`
	Reign      string          `json:"reign"`
	ReignYears int             `json:"reign_years"`
}

// Handle returns the profile for rulerID.
func (h *DetailHandler) Handle(_ context.Context, rulerID string) (*RulerProfile, error) {
	ruler, ok := h.catalog.FindRuler(rulerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRulerNotFound, rulerID)
	}

	return &RulerProfile{
		Ruler:      ruler,
		Detail:     h.details.ResolveDetail(ruler.ID, ruler.Name),
		Curated:    h.details.HasCuratedDetail(ruler.ID),
		Reign:      ruler.Reign(),
		ReignYears: ruler.ReignYears(),
	}, nil
}
