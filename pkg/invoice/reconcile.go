package invoice

import (
	"github.com/shopspring/decimal"

	"school-transport-backend/models"
)

// ReconcileTolerance is the largest difference treated as rounding noise.
var ReconcileTolerance = decimal.New(5, -3)

// Figure compares an upstream figure with the one derived from line items.
type Figure struct {
	Supplied   decimal.Decimal `json:"supplied"`
	Computed   decimal.Decimal `json:"computed"`
	Difference decimal.Decimal `json:"difference"`
	Consistent bool            `json:"consistent"`
}

func newFigure(suppliedValue any, computed decimal.Decimal) Figure {
	s := supplied(suppliedValue, computed)
	diff := s.Sub(computed)
	return Figure{
		Supplied:   s,
		Computed:   computed,
		Difference: diff,
		Consistent: diff.Abs().LessThanOrEqual(ReconcileTolerance),
	}
}

// Reconciliation cross-checks a generated invoice's subtotals and grand total
// against its own line items.
type Reconciliation struct {
	Consistent bool   `json:"consistent"`
	Regular    Figure `json:"regular"`
	Temporary  Figure `json:"temporary"`
	Special    Figure `json:"special"`
	Total      Figure `json:"total"`
}

// Reconcile recomputes every section subtotal and their sum. The grand total
// is checked against the sum of recomputed subtotals.
func Reconcile(gen *models.GeneratedInvoice) Reconciliation {
	if gen == nil {
		return Reconciliation{Consistent: true}
	}

	regular := RegularTotal(gen.RegularAssignments.Weeks)
	temporary := TemporaryTotal(gen.TemporaryAssignments.Days)
	special := SpecialTotal(gen.SpecialServices.Services)

	r := Reconciliation{
		Regular:   newFigure(gen.RegularAssignments.TotalPay, regular),
		Temporary: newFigure(gen.TemporaryAssignments.TotalPay, temporary),
		Special:   newFigure(gen.SpecialServices.TotalPay, special),
		Total:     newFigure(gen.TotalPay, regular.Add(temporary).Add(special)),
	}
	r.Consistent = r.Regular.Consistent && r.Temporary.Consistent && r.Special.Consistent && r.Total.Consistent
	return r
}
