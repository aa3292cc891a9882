// Package dateutil normalizes the loosely typed dates found in job, attendance
// and invoice records into canonical YYYY-MM-DD calendar days.
//
// A calendar day is taken exactly as authored: "2024-03-05T23:30:00-05:00" is
// the 5th of March, never shifted into another zone.
package dateutil

import (
	"regexp"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Layout is the canonical calendar-day layout.
const Layout = "2006-01-02"

var (
	isoDayPrefix   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:$|[T ])`)
	slashDayPrefix = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})(?:$|[T ])`)

	mondayWeeks = &now.Config{WeekStartDay: time.Monday, TimeLocation: time.UTC}
)

// Normalize returns the canonical YYYY-MM-DD form of v. Accepted inputs are
// time.Time, *time.Time, primitive.DateTime and ISO-like strings with or
// without a time component. The second result is false when v carries no
// recognizable calendar day.
func Normalize(v any) (string, bool) {
	switch d := v.(type) {
	case nil:
		return "", false
	case string:
		return normalizeString(d)
	case *string:
		if d == nil {
			return "", false
		}
		return normalizeString(*d)
	case time.Time:
		if d.IsZero() {
			return "", false
		}
		return d.Format(Layout), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return "", false
		}
		return d.Format(Layout), true
	case primitive.DateTime:
		// BSON dates are UTC instants; the stored day is the UTC day.
		return d.Time().UTC().Format(Layout), true
	}
	return "", false
}

func normalizeString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	var m []string
	if m = isoDayPrefix.FindStringSubmatch(s); m == nil {
		m = slashDayPrefix.FindStringSubmatch(s)
	}
	if m == nil {
		return "", false
	}

	day := m[1] + "-" + m[2] + "-" + m[3]
	if _, err := time.Parse(Layout, day); err != nil {
		return "", false
	}
	return day, true
}

// Parse normalizes v and returns midnight UTC of that calendar day.
func Parse(v any) (time.Time, bool) {
	day, ok := Normalize(v)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout, day)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MustDay builds midnight UTC for a calendar day.
func MustDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay compares two values by calendar day only.
func SameDay(a, b any) bool {
	da, okA := Normalize(a)
	db, okB := Normalize(b)
	return okA && okB && da == db
}

// MonthBounds returns the first and last calendar day of a month at UTC midnight.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	n := mondayWeeks.With(MustDay(year, month, 1))
	first := n.BeginningOfMonth()
	last := n.EndOfMonth()
	return first, MustDay(last.Year(), last.Month(), last.Day())
}

// DaysIn returns the number of days in a month.
func DaysIn(year int, month time.Month) int {
	_, last := MonthBounds(year, month)
	return last.Day()
}

// Days returns every calendar day from start to end inclusive. It returns nil
// when end is before start.
func Days(start, end time.Time) []time.Time {
	start = MustDay(start.Year(), start.Month(), start.Day())
	end = MustDay(end.Year(), end.Month(), end.Day())
	if end.Before(start) {
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	m := mondayWeeks.With(MustDay(t.Year(), t.Month(), t.Day())).BeginningOfWeek()
	return MustDay(m.Year(), m.Month(), m.Day())
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday accepts full or abbreviated English weekday names in any case.
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}

// InLocation returns the calendar day of t as observed in loc.
func InLocation(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(Layout)
}
