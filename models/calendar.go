package models

// EventType tags a calendar event.
type EventType string

const (
	EventHoliday        EventType = "holiday"
	EventTempDriver     EventType = "tempDriver"
	EventSpecialService EventType = "specialService"
	EventAbsence        EventType = "absence"
)

// AttendanceType classifies an absence.
type AttendanceType string

const (
	AbsentAll AttendanceType = "All"
	AbsentAM  AttendanceType = "AM"
	AbsentPM  AttendanceType = "PM"
)

// Event is a derived calendar entry. Only the fields of its Type are set.
type Event struct {
	Type        EventType `json:"type"`
	Date        string    `json:"date"`
	RouteNo     string    `json:"routeNo,omitempty"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`

	// holiday
	SchoolID   string `json:"schoolId,omitempty"`
	SchoolName string `json:"schoolName,omitempty"`

	// tempDriver
	DriverID   string    `json:"driverId,omitempty"`
	DriverName string    `json:"driverName,omitempty"`
	TimeOfDay  TimeOfDay `json:"timeOfDay,omitempty"`
	Price      any       `json:"price,omitempty"`
	Reason     string    `json:"reason,omitempty"`

	// specialService
	StudentID        string `json:"studentId,omitempty"`
	ServiceType      string `json:"serviceType,omitempty"`
	SpecialTime      string `json:"specialTime,omitempty"`
	AdditionalCharge any    `json:"additionalCharge,omitempty"`
	Notes            string `json:"notes,omitempty"`

	// specialService and absence
	StudentName string `json:"studentName,omitempty"`

	// absence
	AttendanceType AttendanceType `json:"attendanceType,omitempty"`
}

// CalendarDay is one cell of the 42-cell month grid. Blank cells have a nil Day.
type CalendarDay struct {
	Day            *int    `json:"day"`
	Date           string  `json:"date"`
	IsCurrentMonth bool    `json:"isCurrentMonth"`
	IsToday        bool    `json:"isToday"`
	Events         []Event `json:"events"`
	HasMoreEvents  bool    `json:"hasMoreEvents"`
}

// RouteSchedule is the date x route matrix of the multi-route view.
type RouteSchedule struct {
	Month           int                           `json:"month"`
	Year            int                           `json:"year"`
	Dates           []string                      `json:"dates"`
	AvailableRoutes []string                      `json:"availableRoutes"`
	RouteEvents     map[string]map[string][]Event `json:"routeEvents"`
}
