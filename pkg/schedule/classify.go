// Package schedule folds a month of Jobs into classified calendar events,
// laid out either as a 42-cell month grid or as a date x route matrix.
package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
)

// MaxVisibleEvents is how many events a grid cell shows before hinting at more.
const MaxVisibleEvents = 5

// Rank is the display order of event types, shared by both views:
// holiday < tempDriver < specialService < absence. Unknown types sort last.
func Rank(t models.EventType) int {
	switch t {
	case models.EventHoliday:
		return 0
	case models.EventTempDriver:
		return 1
	case models.EventSpecialService:
		return 2
	case models.EventAbsence:
		return 3
	}
	return 4
}

// targetFunc returns the event list an event for (date, routeNo) belongs in,
// or nil when the pair has no slot.
type targetFunc func(date, routeNo string) *[]models.Event

// classifier runs the four classification passes over jobs of one month.
type classifier struct {
	first, last time.Time
	from, to    string
	target      targetFunc

	// holidayRoutes[date][routeNo] records every route closed on a date,
	// including holidays dropped as duplicates.
	holidayRoutes map[string]map[string]bool
	occurrences   map[time.Weekday][]time.Time
}

func newClassifier(year int, month time.Month, target targetFunc) *classifier {
	first, last := dateutil.MonthBounds(year, month)
	return &classifier{
		first:         first,
		last:          last,
		from:          first.Format(dateutil.Layout),
		to:            last.Format(dateutil.Layout),
		target:        target,
		holidayRoutes: make(map[string]map[string]bool),
		occurrences:   make(map[time.Weekday][]time.Time),
	}
}

func (c *classifier) inMonth(date string) bool {
	return date >= c.from && date <= c.to
}

// day normalizes v and reports whether it falls inside the month.
func (c *classifier) day(v any) (string, bool) {
	date, ok := dateutil.Normalize(v)
	if !ok || !c.inMonth(date) {
		return "", false
	}
	return date, true
}

func (c *classifier) addJob(job models.Job) {
	c.addHolidays(job)
	c.addTempDrivers(job)
	c.addSpecialServices(job)
	c.addAbsences(job)
}

func (c *classifier) addHolidays(job models.Job) {
	for _, h := range job.SchoolHolidays {
		date, ok := c.day(h.Date)
		if !ok {
			continue
		}
		c.markHoliday(date, job.RouteNo)

		events := c.target(date, job.RouteNo)
		if events == nil || hasHoliday(*events, h) {
			continue
		}
		*events = append(*events, models.Event{
			Type:        models.EventHoliday,
			Date:        date,
			RouteNo:     job.RouteNo,
			Label:       "School Holiday",
			Description: h.SchoolName,
			SchoolID:    h.SchoolID,
			SchoolName:  h.SchoolName,
		})
	}
}

func holidaySchoolKey(id, name string) string {
	if id != "" {
		return id
	}
	return name
}

func hasHoliday(events []models.Event, h models.SchoolHoliday) bool {
	key := holidaySchoolKey(h.SchoolID, h.SchoolName)
	for _, e := range events {
		if e.Type == models.EventHoliday && holidaySchoolKey(e.SchoolID, e.SchoolName) == key {
			return true
		}
	}
	return false
}

// markHoliday records a closed (date, routeNo) and evicts absences already
// classified for it by earlier jobs.
func (c *classifier) markHoliday(date, routeNo string) {
	routes, ok := c.holidayRoutes[date]
	if !ok {
		routes = make(map[string]bool)
		c.holidayRoutes[date] = routes
	}
	routes[routeNo] = true

	events := c.target(date, routeNo)
	if events == nil {
		return
	}
	kept := (*events)[:0]
	for _, e := range *events {
		if e.Type == models.EventAbsence && e.RouteNo == routeNo {
			continue
		}
		kept = append(kept, e)
	}
	*events = kept
}

func (c *classifier) isHoliday(date, routeNo string) bool {
	return c.holidayRoutes[date][routeNo]
}

func (c *classifier) addTempDrivers(job models.Job) {
	for _, ta := range job.TemporaryAssignments {
		for _, date := range c.assignmentDays(ta) {
			events := c.target(date, job.RouteNo)
			if events == nil {
				continue
			}
			*events = append(*events, models.Event{
				Type:        models.EventTempDriver,
				Date:        date,
				RouteNo:     job.RouteNo,
				Label:       tempDriverLabel(ta),
				Description: ta.Reason,
				DriverID:    ta.Driver.ID,
				DriverName:  ta.Driver.Name,
				TimeOfDay:   ta.TimeOfDay,
				Price:       ta.Price,
				Reason:      ta.Reason,
			})
		}
	}
}

func tempDriverLabel(ta models.TemporaryAssignment) string {
	name := ta.Driver.FirstName()
	if name == "" {
		name = "Temp driver"
	}
	if ta.TimeOfDay == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, ta.TimeOfDay)
}

// assignmentDays lists the in-month days covered by a single-date or ranged
// assignment.
func (c *classifier) assignmentDays(ta models.TemporaryAssignment) []string {
	if date, ok := dateutil.Normalize(ta.Date); ok {
		if c.inMonth(date) {
			return []string{date}
		}
		return nil
	}

	start, okStart := dateutil.Parse(ta.StartDate)
	end, okEnd := dateutil.Parse(ta.EndDate)
	switch {
	case !okStart:
		return nil
	case !okEnd:
		end = start
	}
	if start.Before(c.first) {
		start = c.first
	}
	if end.After(c.last) {
		end = c.last
	}

	var days []string
	for _, d := range dateutil.Days(start, end) {
		days = append(days, d.Format(dateutil.Layout))
	}
	return days
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// weekdayOccurrences expands a weekly rule for wd across the month.
func (c *classifier) weekdayOccurrences(wd time.Weekday) []time.Time {
	if days, ok := c.occurrences[wd]; ok {
		return days
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[wd]},
		Dtstart:   c.first,
	})
	var days []time.Time
	if err == nil {
		days = r.Between(c.first, c.last, true)
	}
	c.occurrences[wd] = days
	return days
}

func (c *classifier) addSpecialServices(job models.Job) {
	if len(job.SpecialServices) == 0 {
		return
	}

	operating := make(map[string]bool, len(job.OperatingDates))
	for _, d := range job.OperatingDates {
		if date, ok := dateutil.Normalize(d); ok {
			operating[date] = true
		}
	}

	for _, ss := range job.SpecialServices {
		wd, ok := dateutil.ParseWeekday(ss.DayOfWeek)
		if !ok {
			continue
		}
		for _, occ := range c.weekdayOccurrences(wd) {
			date := occ.Format(dateutil.Layout)
			if !operating[date] {
				continue
			}
			events := c.target(date, job.RouteNo)
			if events == nil {
				continue
			}
			label := models.ServiceTypeLabel(ss.ServiceType)
			*events = append(*events, models.Event{
				Type:             models.EventSpecialService,
				Date:             date,
				RouteNo:          job.RouteNo,
				Label:            fmt.Sprintf("%s: %s", label, ss.StudentName),
				Description:      ss.SpecialTime,
				StudentID:        ss.StudentID,
				StudentName:      ss.StudentName,
				ServiceType:      ss.ServiceType,
				SpecialTime:      ss.SpecialTime,
				AdditionalCharge: ss.AdditionalCharge,
				Notes:            ss.Notes,
			})
		}
	}
}

func (c *classifier) addAbsences(job models.Job) {
	for _, rec := range job.Attendance {
		date, ok := c.day(rec.Date)
		if !ok {
			continue
		}

		morningAbsent := !rec.MorningAttended
		eveningAbsent := !rec.EveningAttended
		var kind models.AttendanceType
		switch {
		case morningAbsent && eveningAbsent:
			kind = models.AbsentAll
		case morningAbsent:
			kind = models.AbsentAM
		case eveningAbsent:
			kind = models.AbsentPM
		default:
			continue
		}

		// A student is not absent on a day the school was closed.
		if c.isHoliday(date, job.RouteNo) {
			continue
		}
		events := c.target(date, job.RouteNo)
		if events == nil {
			continue
		}
		name := rec.Student.FullName()
		*events = append(*events, models.Event{
			Type:           models.EventAbsence,
			Date:           date,
			RouteNo:        job.RouteNo,
			Label:          fmt.Sprintf("%s (%s)", name, kind),
			Description:    "Absent",
			StudentName:    name,
			AttendanceType: kind,
		})
	}
}
