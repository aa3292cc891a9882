package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"school-transport-backend/models"
)

func TestWriteSchedule(t *testing.T) {
	s := models.RouteSchedule{
		Month:           3,
		Year:            2024,
		Dates:           []string{"2024-03-01", "2024-03-02"},
		AvailableRoutes: []string{"R1", "R2"},
		RouteEvents: map[string]map[string][]models.Event{
			"R1": {
				"2024-03-01": {{Type: models.EventHoliday, Label: "School Holiday"}, {Type: models.EventAbsence, Label: "Amy Lee (AM)"}},
				"2024-03-02": {},
			},
			"R2": {
				"2024-03-01": {},
				"2024-03-02": {{Type: models.EventTempDriver, Label: "John (PM)"}},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteSchedule(&buf, s); err != nil {
		t.Fatalf("WriteSchedule: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	want := [][]string{
		{"Date", "Route R1", "Route R2"},
		{"2024-03-01", "School Holiday\nAmy Lee (AM)"},
		{"2024-03-02", "", "John (PM)"},
	}
	for i, row := range want {
		for j, cell := range row {
			if j >= len(rows[i]) || rows[i][j] != cell {
				t.Errorf("row %d col %d: got %v, want %q", i, j, rows[i], cell)
			}
		}
	}

	if got := ScheduleFilename(s); got != "route-schedule-2024-03.xlsx" {
		t.Errorf("ScheduleFilename = %q", got)
	}
}
