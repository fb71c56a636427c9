// Package money converts decimal currency amounts to and from the
// int64 minor-unit (cent) representation the ledger stores. Keeping
// balances in integers makes the non-negativity and conservation
// checks exact.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotPositive = errors.New("amount must be greater than 0")
	ErrTooPrecise  = errors.New("amount must have at most 2 decimal places")
	ErrOutOfRange  = errors.New("amount is out of range")
)

// maxAmount caps a single amount at just under 100 trillion units,
// well inside int64 when expressed in cents.
var maxAmount = decimal.New(1, 16)

// FromDecimal converts a decimal currency amount into minor units.
// The amount must be strictly positive and representable in whole
// cents.
func FromDecimal(d decimal.Decimal) (int64, error) {
	if !d.IsPositive() {
		return 0, ErrNotPositive
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return 0, ErrOutOfRange
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, ErrTooPrecise
	}
	return cents.IntPart(), nil
}

// Parse converts a decimal string such as "100.00" into minor units.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return FromDecimal(d)
}

// Format renders minor units as a fixed two-decimal string, e.g.
// 12345 -> "123.45".
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
