// Package calc provides the demo arithmetic helpers: a two-decimal
// Calculator plus small numeric utilities.
package calc

import (
	"errors"
	"github.com/ariefcatur/go-shop-demo/internal/money"
)

// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// Calculator performs basic arithmetic over float64 pairs. Every result is
// rounded to two decimal places; beyond that fixed precision it carries no
// state, so the zero value is ready to use.
type Calculator struct{}

// Add returns a+b rounded to two decimals.
func (Calculator) Add(a, b float64) float64 {
	return money.Round2(a + b)
}

// Subtract returns a-b rounded to two decimals.
func (Calculator) Subtract(a, b float64) float64 {
	return money.Round2(a - b)
}

// Multiply returns a*b rounded to two decimals.
func (Calculator) Multiply(a, b float64) float64 {
	return money.Round2(a * b)
}

// Divide returns a/b rounded to two decimals. A zero divisor yields
// ErrDivisionByZero unchanged; there is no other failure path.
func (Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return money.Round2(a / b), nil
}
