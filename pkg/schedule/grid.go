package schedule

import (
	"sort"
	"time"

	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
)

// GridCells is the fixed size of the month grid: six rows of seven days.
const GridCells = 42

// GridOptions tunes the single-route month grid.
type GridOptions struct {
	// RouteNo limits the grid to one route when set.
	RouteNo string
	// Now is the clock used for isToday; a zero value marks no cell as today.
	Now time.Time
	// Location is where "today" is observed. Defaults to UTC.
	Location *time.Location
}

// BuildMonthGrid lays a month of jobs into the 42-cell calendar grid. Leading
// blanks cover the weekday of the 1st (Sunday first), trailing blanks pad to 42.
func BuildMonthGrid(jobs []models.Job, year int, month time.Month, opts GridOptions) []models.CalendarDay {
	first, last := dateutil.MonthBounds(year, month)
	days := dateutil.Days(first, last)

	byDate := make(map[string]*[]models.Event, len(days))
	for _, d := range days {
		events := []models.Event{}
		byDate[d.Format(dateutil.Layout)] = &events
	}

	c := newClassifier(year, month, func(date, _ string) *[]models.Event {
		return byDate[date]
	})
	for _, job := range jobs {
		if opts.RouteNo != "" && job.RouteNo != opts.RouteNo {
			continue
		}
		c.addJob(job)
	}

	today := ""
	if !opts.Now.IsZero() {
		today = dateutil.InLocation(opts.Now, opts.Location)
	}

	cells := make([]models.CalendarDay, 0, GridCells)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, blankCell())
	}
	for _, d := range days {
		date := d.Format(dateutil.Layout)
		events := *byDate[date]
		SortEvents(events)

		dayOfMonth := d.Day()
		cells = append(cells, models.CalendarDay{
			Day:            &dayOfMonth,
			Date:           date,
			IsCurrentMonth: true,
			IsToday:        date == today,
			Events:         events,
			HasMoreEvents:  len(events) > MaxVisibleEvents,
		})
	}
	for len(cells) < GridCells {
		cells = append(cells, blankCell())
	}
	return cells
}

func blankCell() models.CalendarDay {
	return models.CalendarDay{Events: []models.Event{}}
}

// SortEvents orders events in place by (Rank, routeNo), keeping input order
// for ties. Events without a route sort before routed ones.
func SortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		ri, rj := Rank(events[i].Type), Rank(events[j].Type)
		if ri != rj {
			return ri < rj
		}
		return events[i].RouteNo < events[j].RouteNo
	})
}

// Visible returns the events a grid cell displays.
func Visible(day models.CalendarDay) []models.Event {
	if len(day.Events) <= MaxVisibleEvents {
		return day.Events
	}
	return day.Events[:MaxVisibleEvents]
}
