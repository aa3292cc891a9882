package schedule

import (
	"strings"

	"school-transport-backend/models"
)

// EventFilter is the set of event types a view shows. A nil filter shows all.
type EventFilter map[models.EventType]bool

// ParseEventFilter reads a comma separated list such as "holiday,absence".
// Unknown names are ignored; an empty list yields a nil filter.
func ParseEventFilter(s string) EventFilter {
	var f EventFilter
	for _, part := range strings.Split(s, ",") {
		t := models.EventType(strings.TrimSpace(part))
		switch t {
		case models.EventHoliday, models.EventTempDriver, models.EventSpecialService, models.EventAbsence:
			if f == nil {
				f = EventFilter{}
			}
			f[t] = true
		}
	}
	return f
}

// Allows reports whether events of type t pass the filter.
func (f EventFilter) Allows(t models.EventType) bool {
	return f == nil || f[t]
}

// Apply returns the events that pass the filter, in their original order.
func (f EventFilter) Apply(events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if f.Allows(e.Type) {
			out = append(out, e)
		}
	}
	return out
}

// FilterMatrix returns a copy of s with every cell filtered. The input is
// left untouched.
func FilterMatrix(s models.RouteSchedule, f EventFilter) models.RouteSchedule {
	if f == nil {
		return s
	}
	out := s
	out.RouteEvents = make(map[string]map[string][]models.Event, len(s.RouteEvents))
	for r, byDate := range s.RouteEvents {
		filtered := make(map[string][]models.Event, len(byDate))
		for date, events := range byDate {
			filtered[date] = f.Apply(events)
		}
		out.RouteEvents[r] = filtered
	}
	return out
}
