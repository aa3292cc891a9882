package schedule

import (
	"sort"
	"time"

	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
)

// BuildRouteMatrix folds a month of jobs into a date x route matrix. Every
// (route, date) pair starts with an empty list; events keep insertion order.
func BuildRouteMatrix(jobs []models.Job, year int, month time.Month) models.RouteSchedule {
	first, last := dateutil.MonthBounds(year, month)

	dates := make([]string, 0, last.Day())
	for _, d := range dateutil.Days(first, last) {
		dates = append(dates, d.Format(dateutil.Layout))
	}

	routes := availableRoutes(jobs)

	// Map values are not addressable, so lists are built through pointers and
	// copied into the result once classification is done.
	slots := make(map[string]map[string]*[]models.Event, len(routes))
	for _, r := range routes {
		byDate := make(map[string]*[]models.Event, len(dates))
		for _, date := range dates {
			events := []models.Event{}
			byDate[date] = &events
		}
		slots[r] = byDate
	}

	c := newClassifier(year, month, func(date, routeNo string) *[]models.Event {
		byDate, ok := slots[routeNo]
		if !ok {
			return nil
		}
		return byDate[date]
	})
	for _, job := range jobs {
		if _, ok := slots[job.RouteNo]; !ok {
			continue
		}
		c.addJob(job)
	}

	routeEvents := make(map[string]map[string][]models.Event, len(routes))
	for r, byDate := range slots {
		out := make(map[string][]models.Event, len(byDate))
		for date, events := range byDate {
			out[date] = *events
		}
		routeEvents[r] = out
	}

	return models.RouteSchedule{
		Month:           int(month),
		Year:            year,
		Dates:           dates,
		AvailableRoutes: routes,
		RouteEvents:     routeEvents,
	}
}

// availableRoutes returns the sorted distinct non-empty route numbers.
func availableRoutes(jobs []models.Job) []string {
	seen := make(map[string]bool)
	routes := []string{}
	for _, job := range jobs {
		if job.RouteNo == "" || seen[job.RouteNo] {
			continue
		}
		seen[job.RouteNo] = true
		routes = append(routes, job.RouteNo)
	}
	sort.Strings(routes)
	return routes
}
