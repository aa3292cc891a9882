package invoice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"school-transport-backend/models"
)

var (
	ErrEditOutOfRange = errors.New("invoice edit refers to a missing week, day, route or extra job")
	ErrUnknownEdit    = errors.New("unknown invoice edit operation")
)

// ApplyEdits applies a batch of edits and recomputes the draft total. The
// batch is atomic: if any edit fails the draft is left untouched.
func ApplyEdits(d *models.InvoiceDraft, edits []models.InvoiceEdit) (decimal.Decimal, error) {
	if d == nil {
		return decimal.Zero, ErrEditOutOfRange
	}
	work := cloneDraft(d)
	for i, e := range edits {
		if err := applyEdit(&work, e); err != nil {
			return DraftTotal(d), fmt.Errorf("edit %d (%s): %w", i, e.Op, err)
		}
	}

	total := Recompute(&work)
	*d = work
	return total, nil
}

func applyEdit(d *models.InvoiceDraft, e models.InvoiceEdit) error {
	switch e.Op {
	case models.EditSetRouteFare:
		day, err := dayAt(d, e.Week, e.Day)
		if err != nil {
			return err
		}
		if e.Route < 0 || e.Route >= len(day.Routes) {
			return ErrEditOutOfRange
		}
		day.Routes[e.Route].Fare = e.Fare

	case models.EditAddRoute:
		day, err := dayAt(d, e.Week, e.Day)
		if err != nil {
			return err
		}
		day.Routes = append(day.Routes, models.RouteFare{Name: e.Name, Fare: e.Fare})

	case models.EditRemoveRoute:
		day, err := dayAt(d, e.Week, e.Day)
		if err != nil {
			return err
		}
		if e.Route < 0 || e.Route >= len(day.Routes) {
			return ErrEditOutOfRange
		}
		day.Routes = append(day.Routes[:e.Route], day.Routes[e.Route+1:]...)

	case models.EditSetExtraJobFare:
		if e.Job < 0 || e.Job >= len(d.ExtraJobs) {
			return ErrEditOutOfRange
		}
		d.ExtraJobs[e.Job].Fare = e.Fare

	case models.EditAddExtraJob:
		d.ExtraJobs = append(d.ExtraJobs, models.ExtraJob{
			Date:        e.Date,
			Description: e.Description,
			Fare:        e.Fare,
		})

	case models.EditRemoveExtraJob:
		if e.Job < 0 || e.Job >= len(d.ExtraJobs) {
			return ErrEditOutOfRange
		}
		d.ExtraJobs = append(d.ExtraJobs[:e.Job], d.ExtraJobs[e.Job+1:]...)

	default:
		return ErrUnknownEdit
	}
	return nil
}

func dayAt(d *models.InvoiceDraft, week, day int) (*models.Day, error) {
	if week < 0 || week >= len(d.Weeks) {
		return nil, ErrEditOutOfRange
	}
	days := d.Weeks[week].Days
	if day < 0 || day >= len(days) {
		return nil, ErrEditOutOfRange
	}
	return &days[day], nil
}

// cloneDraft copies the draft deeply enough that edits never reach the
// original slices.
func cloneDraft(d *models.InvoiceDraft) models.InvoiceDraft {
	out := *d
	out.Weeks = make([]models.Week, len(d.Weeks))
	for i, w := range d.Weeks {
		days := make([]models.Day, len(w.Days))
		for j, day := range w.Days {
			day.Routes = append([]models.RouteFare(nil), day.Routes...)
			days[j] = day
		}
		w.Days = days
		out.Weeks[i] = w
	}
	out.ExtraJobs = append([]models.ExtraJob(nil), d.ExtraJobs...)
	return out
}
