package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound2HalfUp(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"13.595", "13.60"},
		{"0", "0.00"},
		{"2500", "2500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(dec(tt.in)).StringFixed(2), "Round2(%s)", tt.in)
	}
}

func TestPercentKeepsPrecision(t *testing.T) {
	// 1/3 of 100 must not be rounded until the caller says so.
	got := Percent(dec("100"), dec("33.3333"))
	assert.True(t, got.Equal(dec("33.3333")), "got %s", got)
}

func TestValidPercent(t *testing.T) {
	assert.True(t, ValidPercent(dec("0")))
	assert.True(t, ValidPercent(dec("100")))
	assert.False(t, ValidPercent(dec("100.01")))
	assert.False(t, ValidPercent(dec("-0.01")))
}

func TestNonNegative(t *testing.T) {
	assert.True(t, NonNegative(dec("-5")).IsZero())
	assert.True(t, NonNegative(dec("5")).Equal(dec("5")))
}
