// Package money holds the two-decimal helpers shared by the calculator and
// the product pricing methods.
package money

import "github.com/shopspring/decimal"

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders v as a dollar string with exactly two decimals, e.g. "$9.00".
func Format(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}
