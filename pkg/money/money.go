// Package money formats monetary amounts for display. Amounts are carried as
// decimals or integer cents and are never mutated to produce a display value.
package money

import "github.com/shopspring/decimal"

// FromCents converts integer cents to a decimal dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}

// Format renders an amount with exactly two decimal places, no currency sign.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatUSD renders an amount as $X.YZ.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// LineTotal computes price × quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CentsLineTotal computes a line total from integer cents, as dollars.
func CentsLineTotal(unitPriceCents int64, quantity int) decimal.Decimal {
	return FromCents(unitPriceCents * int64(quantity))
}
