package pricing

import (
	"github.com/shopspring/decimal"

	"customer-pricing/core/types"
	"customer-pricing/internal/errors"
)

// Validate checks the inputs are inside the domain where the price is defined.
// A profit margin of 1 or more makes total_cost / (1 - margin) undefined or negative.
func (in Inputs) Validate() error {
	if in.MaterialCost.IsNegative() {
		return errors.Inputf("material cost must not be negative, got %s", in.MaterialCost)
	}
	if in.LaborCost.IsNegative() {
		return errors.Inputf("labor cost must not be negative, got %s", in.LaborCost)
	}

	r := in.Rates
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"tax_rate", r.TaxRate},
		{"overhead_rate", r.OverheadRate},
		{"profit_margin", r.ProfitMargin},
		{"commission_rate", r.CommissionRate},
	}
	for _, rate := range rates {
		if rate.value.IsNegative() {
			return errors.Inputf("%s must not be negative, got %s", rate.name, rate.value).
				WithContext("rate", rate.name)
		}
	}
	if r.ProfitMargin.GreaterThanOrEqual(one) {
		return errors.Inputf("profit_margin must be less than 1, got %s", r.ProfitMargin).
			WithContext("rate", "profit_margin")
	}
	return nil
}

// Validate checks the solver options
func (o Options) Validate() error {
	if !o.Tolerance.IsPositive() {
		return errors.Inputf("tolerance must be positive, got %s", o.Tolerance)
	}
	if o.MaxIterations < 0 {
		return errors.Inputf("max iterations must not be negative, got %d", o.MaxIterations)
	}
	switch o.Method {
	case types.MethodIterative, types.MethodClosedForm:
		return nil
	default:
		return errors.NotSupported("pricing method " + string(o.Method))
	}
}
