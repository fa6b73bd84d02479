package services

import "github.com/ersonp/regnal/internal/domain/entities"

// DetailService resolves the biography shown for a ruler.
type DetailService struct {
	details map[string]entities.Detail
}

// NewDetailService creates a detail service over the curated records.
func NewDetailService(details map[string]entities.Detail) *DetailService {
	return &DetailService{details: details}
}

// ResolveDetail returns the curated detail for rulerID, or a generated default
// naming rulerName. It never fails.
func (s *DetailService) ResolveDetail(rulerID, rulerName string) entities.Detail {
	if d, ok := s.details[rulerID]; ok {
		return d
	}
	return entities.DefaultDetail(rulerName)
}

// HasCuratedDetail reports whether a curated record exists for rulerID.
func (s *DetailService) HasCuratedDetail(rulerID string) bool {
	_, ok := s.details[rulerID]
	return ok
}
