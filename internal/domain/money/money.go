// Package money holds the rounding and percentage conventions used by every
// monetary calculation in the billing engine. All amounts are
// decimal.Decimal; rounding to two places happens only at the point a value
// becomes user-visible (a line total, a quote total, an invoice amount), so
// intermediate percentage math keeps full precision.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds to two decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns value*pct/100 at full precision.
func Percent(value, pct decimal.Decimal) decimal.Decimal {
	return value.Mul(pct).Div(hundred)
}

// ValidPercent reports whether pct is within [0,100].
func ValidPercent(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(hundred)
}

// NonNegative clamps negative results of a subtraction cascade to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
