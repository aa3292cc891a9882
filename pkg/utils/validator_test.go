package util

import (
	"testing"

	"school-transport-backend/models"
)

func validDraft() models.InvoiceDraft {
	return models.InvoiceDraft{
		UserType:     models.UserTypeDriver,
		DriverNumber: "D-1",
		Name:         "John Smith",
		PeriodFrom:   "2024-01-01",
		PeriodTo:     "2024-01-31T00:00:00Z",
		Signature:    "J. Smith",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.InvoiceDraft)
		field  string
		tag    string
	}{
		{"valid", func(*models.InvoiceDraft) {}, "", ""},
		{"missing name", func(d *models.InvoiceDraft) { d.Name = "" }, "Name", "required"},
		{"bad period", func(d *models.InvoiceDraft) { d.PeriodFrom = "01/13/2024" }, "PeriodFrom", "isodate"},
		{"pa without number", func(d *models.InvoiceDraft) {
			d.UserType = models.UserTypePA
			d.DriverNumber = ""
		}, "PANumber", "required_if"},
		{"unknown user type", func(d *models.InvoiceDraft) { d.UserType = "ADMIN" }, "UserType", "oneof"},
		{"bad extra job date", func(d *models.InvoiceDraft) {
			d.ExtraJobs = []models.ExtraJob{{Date: "soon"}}
		}, "Date", "isodate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			errs := ValidateStruct(d)

			if tt.field == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %+v", errs[0])
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1", len(errs))
			}
			if errs[0].Field != tt.field || errs[0].Tag != tt.tag {
				t.Errorf("got %s/%s, want %s/%s", errs[0].Field, errs[0].Tag, tt.field, tt.tag)
			}
			if errs[0].Msg == "" {
				t.Error("message should be set")
			}
		})
	}
}
