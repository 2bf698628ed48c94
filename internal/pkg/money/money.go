// Package money centralizes monetary arithmetic for the platform.
//
// Amounts are decimals with two fractional digits. Rounding is
// half-away-from-zero and is applied exactly once, at the point where a
// derived amount is produced; intermediate arithmetic keeps full precision.
package money

import (
	"github.com/shopspring/decimal"

	"tripcore/internal/pkg/errs"
)

var ErrNegativeAmount = errs.New("amount cannot be negative")

// Round2 applies the platform's standard rounding (half away from zero, 2dp).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Parse converts an API-supplied amount string into a decimal, rejecting
// negatives. The empty string is treated as zero.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "invalid amount")
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// MustParse is for tests and static values only.
func MustParse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
