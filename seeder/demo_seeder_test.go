package seeder

import (
	"testing"
	"time"

	"school-transport-backend/models"
	"school-transport-backend/pkg/schedule"
)

func TestDemoJobsOperateOnWeekdaysOnly(t *testing.T) {
	jobs := DemoJobs(2024, time.March)
	if len(jobs) != len(demoRoutes) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(demoRoutes))
	}
	for _, job := range jobs {
		if len(job.OperatingDates) != 21 {
			t.Errorf("%s operates on %d days, want 21", job.RouteNo, len(job.OperatingDates))
		}
		for _, d := range job.OperatingDates {
			day, err := time.Parse("2006-01-02", d.(string))
			if err != nil {
				t.Fatal(err)
			}
			if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
				t.Errorf("%s operates on a weekend: %s", job.RouteNo, d)
			}
		}
	}
}

func TestDemoJobsProduceEveryEventType(t *testing.T) {
	grid := schedule.BuildMonthGrid(DemoJobs(2024, time.March), 2024, time.March, schedule.GridOptions{})

	seen := make(map[models.EventType]bool)
	for _, cell := range grid {
		for _, e := range cell.Events {
			seen[e.Type] = true
		}
		if cell.Date == "2024-03-04" {
			for _, e := range cell.Events {
				if e.Type == models.EventAbsence {
					t.Error("absence on a holiday route should be suppressed")
				}
			}
		}
	}
	for _, typ := range []models.EventType{models.EventHoliday, models.EventTempDriver, models.EventSpecialService, models.EventAbsence} {
		if !seen[typ] {
			t.Errorf("demo month has no %s event", typ)
		}
	}
}
