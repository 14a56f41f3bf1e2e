// Package types defines the core domain types for customer pricing.
// These types are used across all packages and must remain stable.
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol, falling back to the code
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD, "":
		return "$"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	default:
		return string(c) + " "
	}
}

// LineItem is a single material entry on a quote
type LineItem struct {
	// Name is the material description
	Name string `json:"name"`

	// Quantity is the number of units
	Quantity decimal.Decimal `json:"quantity"`

	// UnitCost is the price of one unit
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// LineTotal returns Quantity * UnitCost
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitCost)
}

// MaterialTotal sums the line totals of items
func MaterialTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Labor describes billable labor for a quote
type Labor struct {
	// Hours is the number of labor hours
	Hours decimal.Decimal `json:"hours"`

	// Rate is the hourly labor rate
	Rate decimal.Decimal `json:"rate"`
}

// Base returns Hours * Rate
func (l Labor) Base() decimal.Decimal {
	return l.Hours.Mul(l.Rate)
}

// RateParameters are the dimensionless fractions that drive pricing
type RateParameters struct {
	// TaxRate inflates the raw material cost
	TaxRate decimal.Decimal `json:"tax_rate"`

	// OverheadRate is applied to taxed material plus total labor
	OverheadRate decimal.Decimal `json:"overhead_rate"`

	// ProfitMargin is the share of the final price kept as profit
	ProfitMargin decimal.Decimal `json:"profit_margin"`

	// CommissionRate is the share of profit paid as commission
	CommissionRate decimal.Decimal `json:"commission_rate"`
}
