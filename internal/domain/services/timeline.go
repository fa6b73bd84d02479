package services

import (
	"cmp"
	"slices"

	"github.com/ersonp/regnal/internal/domain/entities"
)

// TimelineService assembles the chronological dynasty timeline.
type TimelineService struct{}

// NewTimelineService creates a new timeline service.
func NewTimelineService() *TimelineService {
	return &TimelineService{}
}

// BuildTimeline orders dynasties by start year (stable, over a copy) and
// closes the timeline with the fixed end marker. Each dynasty's rulers stay
// in their stored succession order.
func (s *TimelineService) BuildTimeline(dynasties []entities.Dynasty) entities.Timeline {
	ordered := slices.Clone(dynasties)
	slices.SortStableFunc(ordered, func(a, b entities.Dynasty) int {
		return cmp.Compare(a.StartYear, b.StartYear)
	})

	entries := make([]entities.TimelineEntry, 0, len(ordered))
	for _, d := range ordered {
		entries = append(entries, entities.TimelineEntry{Dynasty: d, Rulers: d.Rulers})
	}

	return entities.Timeline{
		Entries: entries,
		End:     entities.EndMarker{Year: entities.TimelineEndYear, Label: entities.TimelineEndLabel},
	}
}
