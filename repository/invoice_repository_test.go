package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-transport-backend/pkg/dateutil"
)

func TestGeneratedRangeFilterMatchesStringsAndDates(t *testing.T) {
	filter := generatedRangeFilter("D1", "2024-01-01", "2024-01-05")

	if filter["driverId"] != "D1" {
		t.Errorf("driverId = %v", filter["driverId"])
	}

	tests := []struct {
		field string
		day   string
		date  time.Time
	}{
		{"originalDateRange.startDate", "2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"originalDateRange.endDate", "2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cond, ok := filter[tt.field].(bson.M)
			if !ok {
				t.Fatalf("%s is not an operator document: %v", tt.field, filter[tt.field])
			}
			values, ok := cond["$in"].(bson.A)
			if !ok || len(values) != 2 {
				t.Fatalf("$in = %v, want a string and a date", cond["$in"])
			}
			if values[0] != tt.day {
				t.Errorf("string form = %v, want %s", values[0], tt.day)
			}
			stored, ok := values[1].(primitive.DateTime)
			if !ok || !stored.Time().Equal(tt.date) {
				t.Errorf("date form = %v, want %v", values[1], tt.date)
			}
			if day, _ := dateutil.Normalize(stored); day != tt.day {
				t.Errorf("date form reads back as %s", day)
			}
		})
	}
}

func TestDayValuesSkipsUnparseableDate(t *testing.T) {
	values := dayValues("not a date")
	if len(values) != 1 || values[0] != "not a date" {
		t.Errorf("got %v, want only the raw string", values)
	}
}
