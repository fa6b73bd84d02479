package handlers

import (
	"context"

	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/services"
)

// StatsHandler summarizes the catalog.
type StatsHandler struct {
	catalog *services.CatalogService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(catalog *services.CatalogService) *StatsHandler {
	return &StatsHandler{catalog: catalog}
}

// Count is the number of rulers under one label.
type Count struct {
	Label  string `json:"label"`
	Rulers int    `json:"rulers"`
}

// StatsResult contains catalog totals and per-era and per-religion counts,
// both in enumeration order.
type StatsResult struct {
	entities.Stats
	ByEra      []Count `json:"by_era"`
	ByReligion []Count `json:"by_religion"`
}

// Handle computes the statistics.
func (h *StatsHandler) Handle(_ context.Context) (*StatsResult, error) {
	eras := make(map[entities.Era]int)
	religions := make(map[entities.Religion]int)
	for _, r := range h.catalog.AllRulers() {
		eras[r.Era]++
		religions[r.Religion]++
	}

	result := &StatsResult{Stats: h.catalog.Stats()}
	for _, era := range entities.AllEras() {
		result.ByEra = append(result.ByEra, Count{Label: string(era), Rulers: eras[era]})
	}
	for _, religion := range entities.AllReligions() {
		result.ByReligion = append(result.ByReligion, Count{Label: string(religion), Rulers: religions[religion]})
	}
	return result, nil
}
