package models

// Response models referenced by the swagger annotations on the handlers.

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"month must be between 1 and 12"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

type FieldError struct {
	Field string `json:"field" example:"PeriodFrom"`
	Tag   string `json:"tag" example:"required"`
	Msg   string `json:"message" example:"Field 'PeriodFrom' is required."`
}

type CalendarGridResponse struct {
	Month int           `json:"month" example:"3"`
	Year  int           `json:"year" example:"2024"`
	Data  []CalendarDay `json:"data"`
}

type RouteScheduleResponse struct {
	Data RouteSchedule `json:"data"`
}

type RoutesResponse struct {
	Data []Route `json:"data"`
}

type StudentsResponse struct {
	Data []Student `json:"data"`
}

type InvoiceDraftResponse struct {
	Message string       `json:"message,omitempty" example:"Invoice submitted"`
	Data    InvoiceDraft `json:"data"`
}

type JobViewResponse struct {
	Columns []string `json:"columns" example:"routeNo,school,driver"`
	Source  string   `json:"source" example:"server"`
}
