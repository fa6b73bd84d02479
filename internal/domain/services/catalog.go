package services

import (
	"slices"

	"github.com/ersonp/regnal/internal/domain/entities"
)

// CatalogService exposes the immutable ruler catalog.
// It is safe for concurrent readers; nothing here mutates the catalog.
type CatalogService struct {
	dynasties []entities.Dynasty
	details   map[string]entities.Detail
	byID      map[string]entities.Ruler
}

// NewCatalogService creates a catalog service over the given catalog.
func NewCatalogService(catalog *entities.Catalog) *CatalogService {
	s := &CatalogService{
		details: make(map[string]entities.Detail),
		byID:    make(map[string]entities.Ruler),
	}
	if catalog == nil {
		return s
	}

	s.dynasties = catalog.Dynasties
	if catalog.Details != nil {
		s.details = catalog.Details
	}
	for _, d := range s.dynasties {
		for _, r := range d.Rulers {
			if _, exists := s.byID[r.ID]; !exists {
				s.byID[r.ID] = r
			}
		}
	}
	return s
}

// Dynasties returns every dynasty in authored order.
func (s *CatalogService) Dynasties() []entities.Dynasty {
	return slices.Clone(s.dynasties)
}

// AllRulers concatenates each dynasty's rulers in dynasty order. No sorting is applied.
func (s *CatalogService) AllRulers() []entities.Ruler {
	rulers := make([]entities.Ruler, 0, len(s.byID))
	for _, d := range s.dynasties {
		rulers = append(rulers, d.Rulers...)
	}
	return rulers
}

// FindRuler looks up a ruler by id.
func (s *CatalogService) FindRuler(id string) (entities.Ruler, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Details returns the curated detail records keyed by ruler id.
// Callers must treat the map as read-only.
func (s *CatalogService) Details() map[string]entities.Detail {
	return s.details
}

// Stats summarizes the catalog.
func (s *CatalogService) Stats() entities.Stats {
	stats := entities.Stats{
		Dynasties: len(s.dynasties),
		Eras:      len(entities.AllEras()),
	}
	for i, d := range s.dynasties {
		stats.Rulers += len(d.Rulers)
		if i == 0 {
			stats.EarliestYear = d.StartYear
			stats.LatestYear = d.EndYear
			continue
		}
		stats.EarliestYear = min(stats.EarliestYear, d.StartYear)
		stats.LatestYear = max(stats.LatestYear, d.EndYear)
	}
	stats.SpanYears = stats.LatestYear - stats.EarliestYear
	return stats
}
