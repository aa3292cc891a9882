package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is one route's operating record for a period. Date-bearing fields are
// kept as `any` because the upstream records mix BSON dates and ISO strings;
// they are normalized by pkg/dateutil when aggregated.
type Job struct {
	ID                   primitive.ObjectID    `json:"_id,omitempty" bson:"_id,omitempty"`
	RouteNo              string                `json:"routeNo" bson:"routeNo"`
	Month                int                   `json:"month,omitempty" bson:"month,omitempty"`
	Year                 int                   `json:"year,omitempty" bson:"year,omitempty"`
	OperatingDates       []any                 `json:"operatingDates" bson:"operatingDates"`
	SchoolHolidays       []SchoolHoliday       `json:"schoolHolidays" bson:"schoolHolidays"`
	TemporaryAssignments []TemporaryAssignment `json:"temporaryAssignments" bson:"temporaryAssignments"`
	SpecialServices      []SpecialService      `json:"specialServices" bson:"specialServices"`
	Attendance           []AttendanceRecord    `json:"attendance" bson:"attendance"`
}

type SchoolHoliday struct {
	Date       any    `json:"date" bson:"date"`
	SchoolID   string `json:"schoolId" bson:"schoolId"`
	SchoolName string `json:"schoolName" bson:"schoolName"`
}

// TimeOfDay marks which leg of the day a temporary driver covers.
type TimeOfDay string

const (
	TimeOfDayAM   TimeOfDay = "AM"
	TimeOfDayPM   TimeOfDay = "PM"
	TimeOfDayBoth TimeOfDay = "BOTH"
)

// DriverRef is the embedded driver identity on a temporary assignment.
type DriverRef struct {
	ID   string `json:"_id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// FirstName returns the first word of the driver's name.
func (d DriverRef) FirstName() string {
	fields := strings.Fields(d.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// TemporaryAssignment covers either a single Date or the inclusive
// StartDate..EndDate range.
type TemporaryAssignment struct {
	Date      any       `json:"date,omitempty" bson:"date,omitempty"`
	StartDate any       `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   any       `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Driver    DriverRef `json:"driver" bson:"driver"`
	TimeOfDay TimeOfDay `json:"timeOfDay" bson:"timeOfDay"`
	Price     any       `json:"price,omitempty" bson:"price,omitempty"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
}

// SpecialService recurs on DayOfWeek, but only on the job's operating dates.
type SpecialService struct {
	DayOfWeek        string `json:"dayOfWeek" bson:"dayOfWeek"`
	StudentID        string `json:"studentId" bson:"studentId"`
	StudentName      string `json:"studentName" bson:"studentName"`
	ServiceType      string `json:"serviceType" bson:"serviceType"`
	SpecialTime      string `json:"specialTime,omitempty" bson:"specialTime,omitempty"`
	AdditionalCharge any    `json:"additionalCharge,omitempty" bson:"additionalCharge,omitempty"`
	Notes            string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type StudentName struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

func (s StudentName) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

type AttendanceRecord struct {
	Date            any         `json:"date" bson:"date"`
	Student         StudentName `json:"student" bson:"student"`
	MorningAttended bool        `json:"morningAttended" bson:"morningAttended"`
	EveningAttended bool        `json:"eveningAttended" bson:"eveningAttended"`
}

// CalendarResponse is the collaborator shape of the calendar endpoint.
type CalendarResponse struct {
	Data []Job `json:"data"`
}
