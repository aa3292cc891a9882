package seeder

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
	"school-transport-backend/repository"
)

var demoRoutes = []models.Route{
	{RouteNo: "R1", Name: "Hillside Loop", Capacity: 16, SchoolName: "Hillside Primary", Active: true},
	{RouteNo: "R2", Name: "Riverside Express", Capacity: 8, SchoolName: "Riverside Academy", Active: true},
	{RouteNo: "R3", Name: "Moor Lane", Capacity: 12, SchoolName: "Hillside Primary", Active: true},
}

// SeedRoutes inserts the demo routes that do not exist yet.
func SeedRoutes(routeRepo repository.RouteRepository) {
	slog.Info("seeding routes")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, route := range demoRoutes {
		existing, err := routeRepo.FindRouteByNumber(ctx, route.RouteNo)
		if err == nil && existing != nil {
			slog.Debug("route already exists", "routeNo", route.RouteNo)
			continue
		}

		r := route
		if _, err := routeRepo.CreateRoute(ctx, &r); err != nil {
			slog.Error("failed to seed route", "routeNo", route.RouteNo, "error", err)
			continue
		}
		slog.Info("route seeded", "routeNo", route.RouteNo)
	}
}

// SeedDemoJobs inserts DemoJobs for the month of today unless that month
// already has jobs.
func SeedDemoJobs(jobRepo repository.JobRepository, today time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	year, month := today.Year(), int(today.Month())
	count, err := jobRepo.CountDocuments(ctx, bson.M{"year": year, "month": month})
	if err != nil {
		slog.Error("failed to count jobs", "error", err)
		return
	}
	if count > 0 {
		slog.Info("jobs already present, skipping demo seed", "year", year, "month", month, "count", count)
		return
	}

	if err := jobRepo.InsertMany(ctx, DemoJobs(year, today.Month())); err != nil {
		slog.Error("failed to seed demo jobs", "error", err)
		return
	}
	slog.Info("demo jobs seeded", "year", year, "month", month)
}

// DemoJobs builds one job per demo route with a representative mix of
// holidays, cover drivers, special services and absences.
func DemoJobs(year int, month time.Month) []models.Job {
	var weekdays []any
	var firstMonday, secondWednesday string
	wednesdays := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		case time.Monday:
			if firstMonday == "" {
				firstMonday = d.Format(dateutil.Layout)
			}
		case time.Wednesday:
			wednesdays++
			if wednesdays == 2 {
				secondWednesday = d.Format(dateutil.Layout)
			}
		}
		weekdays = append(weekdays, d.Format(dateutil.Layout))
	}
	day := func(n int) string {
		return time.Date(year, month, n, 0, 0, 0, 0, time.UTC).Format(dateutil.Layout)
	}

	return []models.Job{
		{
			RouteNo:        "R1",
			Year:           year,
			Month:          int(month),
			OperatingDates: weekdays,
			SchoolHolidays: []models.SchoolHoliday{
				{Date: firstMonday, SchoolID: "hillside", SchoolName: "Hillside Primary"},
			},
			SpecialServices: []models.SpecialService{{
				DayOfWeek:        "Wednesday",
				StudentID:        "st-101",
				StudentName:      "Amy Lee",
				ServiceType:      models.ServiceLatePickup,
				SpecialTime:      "16:30",
				AdditionalCharge: 7.5,
			}},
			Attendance: []models.AttendanceRecord{
				{Date: firstMonday, Student: models.StudentName{FirstName: "Tom", LastName: "Hart"}},
				{Date: day(12), Student: models.StudentName{FirstName: "Amy", LastName: "Lee"}, EveningAttended: true},
			},
		},
		{
			RouteNo:        "R2",
			Year:           year,
			Month:          int(month),
			OperatingDates: weekdays,
			TemporaryAssignments: []models.TemporaryAssignment{{
				StartDate: day(8),
				EndDate:   day(10),
				Driver:    models.DriverRef{ID: "drv-7", Name: "Sam Patel"},
				TimeOfDay: models.TimeOfDayBoth,
				Price:     45,
				Reason:    "Annual leave",
			}},
			Attendance: []models.AttendanceRecord{
				{Date: secondWednesday, Student: models.StudentName{FirstName: "Jo", LastName: "Reed"}, MorningAttended: true},
			},
		},
		{
			RouteNo:        "R3",
			Year:           year,
			Month:          int(month),
			OperatingDates: weekdays,
			SchoolHolidays: []models.SchoolHoliday{
				{Date: firstMonday, SchoolID: "hillside", SchoolName: "Hillside Primary"},
			},
		},
	}
}
