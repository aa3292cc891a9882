package invoice

import (
	"errors"
	"strings"

	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
)

var ErrInvalidRange = errors.New("invalid date range: startDate and endDate must be dates with startDate on or before endDate")

// MaterializedDay is one calendar day of an invoice range. Days without
// assignment data carry nil routes.
type MaterializedDay struct {
	Day    string            `json:"day"`
	Date   string            `json:"date"`
	Route1 *models.RouteFare `json:"route1"`
	Route2 *models.RouteFare `json:"route2"`
}

// MaterializedWeek groups the days of one Monday-anchored week.
type MaterializedWeek struct {
	WeekNumber int               `json:"weekNumber"`
	WeekStart  string            `json:"weekStart"`
	Days       []MaterializedDay `json:"days"`
}

// MaterializeRange expands sparse regular assignment weeks into one entry for
// every day in [start, end]. Weeks start on Monday and are numbered from 1 in
// order of first appearance. Sparse days outside the range are dropped.
func MaterializeRange(start, end any, weeks []models.RegularWeek) ([]MaterializedWeek, error) {
	from, okFrom := dateutil.Parse(start)
	to, okTo := dateutil.Parse(end)
	if !okFrom || !okTo || to.Before(from) {
		return nil, ErrInvalidRange
	}

	known := make(map[string]*MaterializedDay)
	for _, w := range weeks {
		for _, d := range w.Days {
			date, ok := dateutil.Normalize(d.Date)
			if !ok {
				continue
			}
			entry, seen := known[date]
			if !seen {
				entry = &MaterializedDay{}
				known[date] = entry
			}
			if entry.Route1 == nil {
				entry.Route1 = d.Route1
			}
			if entry.Route2 == nil {
				entry.Route2 = d.Route2
			}
		}
	}

	var out []MaterializedWeek
	for _, day := range dateutil.Days(from, to) {
		date := day.Format(dateutil.Layout)
		weekStart := dateutil.WeekStart(day).Format(dateutil.Layout)
		if len(out) == 0 || out[len(out)-1].WeekStart != weekStart {
			out = append(out, MaterializedWeek{WeekNumber: len(out) + 1, WeekStart: weekStart})
		}

		entry := MaterializedDay{Day: day.Weekday().String(), Date: date}
		if data, ok := known[date]; ok {
			entry.Route1 = data.Route1
			entry.Route2 = data.Route2
		}
		w := &out[len(out)-1]
		w.Days = append(w.Days, entry)
	}
	return out, nil
}

func routePresent(r *models.RouteFare) bool {
	return r != nil && strings.TrimSpace(r.Name) != "" && Coerce(r.Fare).IsPositive()
}

// HasSecondRoute reports whether any day of any week has a named second route
// with a positive fare. The answer applies to every week's table.
func HasSecondRoute(weeks []models.RegularWeek) bool {
	for _, w := range weeks {
		for _, d := range w.Days {
			if routePresent(d.Route2) {
				return true
			}
		}
	}
	return false
}

// DraftRouteColumns is the number of route columns a draft's weekly tables
// need: one past the highest route position holding a named, positive fare,
// and never less than one.
func DraftRouteColumns(weeks []models.Week) int {
	cols := 1
	for _, w := range weeks {
		for _, d := range w.Days {
			for i := range d.Routes {
				if i+1 > cols && routePresent(&d.Routes[i]) {
					cols = i + 1
				}
			}
		}
	}
	return cols
}
