// Package types - Price breakdown types
package types

import "github.com/shopspring/decimal"

// BreakdownKey names a component of the price breakdown
type BreakdownKey string

const (
	KeyMaterialRaw   BreakdownKey = "Material Raw"
	KeyMaterialTaxed BreakdownKey = "Material Taxed"
	KeyLaborBase     BreakdownKey = "Labor Base"
	KeyCommission    BreakdownKey = "Commission"
	KeyLaborTotal    BreakdownKey = "Labor Total"
	KeyOverhead      BreakdownKey = "Overhead"
	KeyTotalCost     BreakdownKey = "Total Cost"
	KeyProfit        BreakdownKey = "Profit"
	KeyFinalPrice    BreakdownKey = "Final Price"
)

// BreakdownKeys lists the components in display order
var BreakdownKeys = []BreakdownKey{
	KeyMaterialRaw,
	KeyMaterialTaxed,
	KeyLaborBase,
	KeyCommission,
	KeyLaborTotal,
	KeyOverhead,
	KeyTotalCost,
	KeyProfit,
	KeyFinalPrice,
}

// String returns the display label
func (k BreakdownKey) String() string {
	return string(k)
}

// BreakdownEntry is one named amount in a breakdown
type BreakdownEntry struct {
	// Key is the component label
	Key BreakdownKey `json:"label"`

	// Amount is Exact rounded to 2 decimal places
	Amount decimal.Decimal `json:"amount"`

	// Exact is the unrounded amount
	Exact decimal.Decimal `json:"exact"`

	// Formula describes how the amount was calculated
	Formula string `json:"formula"`
}

// PriceBreakdown is the ordered set of cost components of a price
type PriceBreakdown struct {
	Entries []BreakdownEntry `json:"entries"`
}

// Add appends an entry, rounding the amount for display
func (b *PriceBreakdown) Add(key BreakdownKey, exact decimal.Decimal, formula string) {
	b.Entries = append(b.Entries, BreakdownEntry{
		Key:     key,
		Amount:  exact.Round(2),
		Exact:   exact,
		Formula: formula,
	})
}

// Get returns the entry for key
func (b *PriceBreakdown) Get(key BreakdownKey) (BreakdownEntry, bool) {
	for _, e := range b.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return BreakdownEntry{}, false
}

// Amount returns the rounded amount for key, or zero if absent
func (b *PriceBreakdown) Amount(key BreakdownKey) decimal.Decimal {
	e, _ := b.Get(key)
	return e.Amount
}

// Method identifies how a price was solved
type Method string

const (
	// MethodIterative solves by fixed-point iteration
	MethodIterative Method = "iterative"

	// MethodClosedForm solves the linear price equation directly
	MethodClosedForm Method = "closed-form"
)

// String returns the string representation
func (m Method) String() string {
	return string(m)
}

// Resolution is the outcome of resolving a price
type Resolution struct {
	// FinalPrice is the accepted price rounded to 2 decimal places
	FinalPrice decimal.Decimal `json:"final_price"`

	// Breakdown holds every cost component
	Breakdown PriceBreakdown `json:"breakdown"`

	// Method is the solve strategy used
	Method Method `json:"method"`

	// Iterations is the number of iteration steps taken (0 for closed form)
	Iterations int `json:"iterations"`
}
