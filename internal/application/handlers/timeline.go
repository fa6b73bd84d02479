package handlers

import (
	"context"

	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/services"
)

// TimelineHandler assembles the dynasty timeline.
type TimelineHandler struct {
	catalog  *services.CatalogService
	timeline *services.TimelineService
}

// NewTimelineHandler creates a new timeline handler.
func NewTimelineHandler(catalog *services.CatalogService, timeline *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		catalog:  catalog,
		timeline: timeline,
	}
}

// TimelineResult contains the chronological timeline.
type TimelineResult struct {
	Timeline entities.Timeline `json:"timeline"`
}

// Handle builds the timeline over every dynasty in the catalog.
func (h *TimelineHandler) Handle(_ context.Context) (*TimelineResult, error) {
	return &TimelineResult{
		Timeline: h.timeline.BuildTimeline(h.catalog.Dynasties()),
	}, nil
}

// DynastySummary describes a dynasty without its rulers.
type DynastySummary struct {
	Name      string       `json:"name"`
	Era       entities.Era `json:"era"`
	StartYear int          `json:"start_year"`
	EndYear   int          `json:"end_year"`
	Period    string       `json:"period"`
	Rulers    int          `json:"rulers"`
}

// HandleDynasties lists dynasties in authored order.
func (h *TimelineHandler) HandleDynasties(_ context.Context) ([]DynastySummary, error) {
	dynasties := h.catalog.Dynasties()
	summaries := make([]DynastySummary, 0, len(dynasties))
	for _, d := range dynasties {
		summaries = append(summaries, DynastySummary{
			Name:      d.Name,
			Era:       d.Era,
			StartYear: d.StartYear,
			EndYear:   d.EndYear,
			Period:    d.Period(),
			Rulers:    len(d.Rulers),
		})
	}
	return summaries, nil
}
