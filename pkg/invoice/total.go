package invoice

import (
	"github.com/shopspring/decimal"

	"school-transport-backend/models"
)

// RoutesTotal sums the fares of a day's routes.
func RoutesTotal(routes []models.RouteFare) decimal.Decimal {
	total := decimal.Zero
	for _, r := range routes {
		total = total.Add(Coerce(r.Fare))
	}
	return total
}

// WeekTotal sums every route fare in a draft week.
func WeekTotal(w models.Week) decimal.Decimal {
	total := decimal.Zero
	for _, d := range w.Days {
		total = total.Add(RoutesTotal(d.Routes))
	}
	return total
}

// ExtraJobsTotal sums the extra job fares of a draft.
func ExtraJobsTotal(jobs []models.ExtraJob) decimal.Decimal {
	total := decimal.Zero
	for _, j := range jobs {
		total = total.Add(Coerce(j.Fare))
	}
	return total
}

// DraftTotal is the sum of all route fares and extra job fares of a draft.
// The stored TotalPay is ignored.
func DraftTotal(d *models.InvoiceDraft) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	total := ExtraJobsTotal(d.ExtraJobs)
	for _, w := range d.Weeks {
		total = total.Add(WeekTotal(w))
	}
	return total
}

// Recompute stores the derived total on the draft and returns it. Calling it
// again without edits yields the same total.
func Recompute(d *models.InvoiceDraft) decimal.Decimal {
	total := DraftTotal(d)
	if d != nil {
		d.TotalPay = total.Round(2).InexactFloat64()
	}
	return total
}

func optionalFare(r *models.RouteFare) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	return Coerce(r.Fare)
}

// RegularTotal sums route1 and route2 fares across generated invoice weeks.
func RegularTotal(weeks []models.RegularWeek) decimal.Decimal {
	total := decimal.Zero
	for _, w := range weeks {
		for _, d := range w.Days {
			total = total.Add(optionalFare(d.Route1)).Add(optionalFare(d.Route2))
		}
	}
	return total
}

// TemporaryTotal sums every temporary route fare.
func TemporaryTotal(days []models.TemporaryDay) decimal.Decimal {
	total := decimal.Zero
	for _, d := range days {
		for _, r := range d.Routes {
			total = total.Add(Coerce(r.Fare))
		}
	}
	return total
}

// SpecialTotal sums every special service surcharge.
func SpecialTotal(lines []models.SpecialServiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(Coerce(l.AdditionalCharge))
	}
	return total
}

// supplied prefers a figure provided upstream and falls back to the computed
// one when the field is absent.
func supplied(v any, computed decimal.Decimal) decimal.Decimal {
	if v == nil {
		return computed
	}
	return Coerce(v)
}
