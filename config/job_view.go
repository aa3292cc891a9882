package config

import "strings"

// JobViewColumns are the column keys the job view knows how to render.
var JobViewColumns = []string{
	"routeNo",
	"school",
	"driver",
	"pa",
	"vehicle",
	"pickupTime",
	"dropoffTime",
	"students",
	"operatingDays",
	"status",
}

var DefaultJobViewColumns = []string{"routeNo", "school", "driver", "pa", "students", "status"}

// Sources a job view configuration can come from.
const (
	JobViewSourceServer  = "server"
	JobViewSourceLocal   = "local"
	JobViewSourceDefault = "default"
)

// JobView is the column configuration handed to the job view.
type JobView struct {
	Columns []string
	Source  string
}

// ResolveJobView picks the first source with at least one recognized column:
// the stored server setting, then the local fallback, then the defaults.
// Unknown columns are dropped and order is kept without duplicates.
func ResolveJobView(stored, fallback []string) JobView {
	if cols := sanitizeColumns(stored); len(cols) > 0 {
		return JobView{Columns: cols, Source: JobViewSourceServer}
	}
	if cols := sanitizeColumns(fallback); len(cols) > 0 {
		return JobView{Columns: cols, Source: JobViewSourceLocal}
	}
	return JobView{
		Columns: append([]string(nil), DefaultJobViewColumns...),
		Source:  JobViewSourceDefault,
	}
}

// IsJobViewColumn reports whether name is a recognized column, ignoring case.
func IsJobViewColumn(name string) bool {
	_, ok := canonicalColumn(name)
	return ok
}

func canonicalColumn(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range JobViewColumns {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

func sanitizeColumns(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	var out []string
	for _, raw := range columns {
		c, ok := canonicalColumn(raw)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
