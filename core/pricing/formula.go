// Package pricing resolves the self-consistent final price of a quote.
//
// Commission is a share of profit, profit is a share of the final price, and
// the final price is marked up from costs that include the commission. The
// resolver finds the price p with p = f(p).
package pricing

import (
	"github.com/shopspring/decimal"

	"customer-pricing/core/types"
)

var one = decimal.NewFromInt(1)

// Inputs are the cost and rate inputs to price resolution
type Inputs struct {
	// MaterialCost is the raw (untaxed) material total
	MaterialCost decimal.Decimal

	// LaborCost is the base labor cost before commission
	LaborCost decimal.Decimal

	// Rates are the tax, overhead, margin and commission fractions
	Rates types.RateParameters
}

// TaxedMaterial returns MaterialCost * (1 + TaxRate)
func (in Inputs) TaxedMaterial() decimal.Decimal {
	return in.MaterialCost.Mul(one.Add(in.Rates.TaxRate))
}

// InitialGuess is the starting price for iteration: taxed material plus labor.
func (in Inputs) InitialGuess() decimal.Decimal {
	return in.TaxedMaterial().Add(in.LaborCost)
}

// Step applies one iteration of the price recurrence.
func (in Inputs) Step(price decimal.Decimal) decimal.Decimal {
	return in.components(in.TaxedMaterial(), price).newPrice
}

// components holds every intermediate quantity derived from a price guess
type components struct {
	taxedMaterial decimal.Decimal
	profit        decimal.Decimal
	commission    decimal.Decimal
	totalLabor    decimal.Decimal
	baseCost      decimal.Decimal
	overhead      decimal.Decimal
	totalCost     decimal.Decimal
	newPrice      decimal.Decimal
}

func (in Inputs) components(taxedMaterial, price decimal.Decimal) components {
	r := in.Rates
	c := components{taxedMaterial: taxedMaterial}
	c.profit = price.Mul(r.ProfitMargin)
	c.commission = c.profit.Mul(r.CommissionRate)
	c.totalLabor = in.LaborCost.Add(c.commission)
	c.baseCost = taxedMaterial.Add(c.totalLabor)
	c.overhead = c.baseCost.Mul(r.OverheadRate)
	c.totalCost = c.baseCost.Add(c.overhead)
	c.newPrice = c.totalCost.Div(one.Sub(r.ProfitMargin))
	return c
}

// breakdown recomputes the components from the accepted price
func (in Inputs) breakdown(price decimal.Decimal) types.PriceBreakdown {
	c := in.components(in.TaxedMaterial(), price)

	var b types.PriceBreakdown
	b.Add(types.KeyMaterialRaw, in.MaterialCost, "sum(quantity * unit_cost)")
	b.Add(types.KeyMaterialTaxed, c.taxedMaterial, "material_raw * (1 + tax_rate)")
	b.Add(types.KeyLaborBase, in.LaborCost, "labor_hours * labor_rate")
	b.Add(types.KeyCommission, c.commission, "profit * commission_rate")
	b.Add(types.KeyLaborTotal, c.totalLabor, "labor_base + commission")
	b.Add(types.KeyOverhead, c.overhead, "(material_taxed + labor_total) * overhead_rate")
	b.Add(types.KeyTotalCost, c.totalCost, "material_taxed + labor_total + overhead")
	b.Add(types.KeyProfit, c.profit, "final_price * profit_margin")
	b.Add(types.KeyFinalPrice, price, "total_cost / (1 - profit_margin)")
	return b
}
