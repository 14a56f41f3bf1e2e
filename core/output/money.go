package output

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"customer-pricing/core/types"
)

// FormatMoney renders an amount with the currency symbol, thousands separators and 2 decimals.
func FormatMoney(amount decimal.Decimal, currency types.Currency) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	fixed := rounded.StringFixed(2)
	cents := fixed[len(fixed)-2:]
	return sign + currency.Symbol() + humanize.BigComma(rounded.BigInt()) + "." + cents
}

// FormatQuantity renders a quantity without trailing zeros
func FormatQuantity(q decimal.Decimal) string {
	return q.String()
}
