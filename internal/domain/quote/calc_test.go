package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(qty, price, discPct, discAmt string) LineItem {
	return LineItem{
		Quantity:           dec(qty),
		UnitPrice:          dec(price),
		DiscountPercentage: dec(discPct),
		DiscountAmount:     dec(discAmt),
	}
}

func TestCalculateLineItem(t *testing.T) {
	tests := []struct {
		name      string
		item      LineItem
		wantTotal string
	}{
		{"no discount", item("2", "100", "0", "0"), "200.00"},
		{"percentage discount", item("2", "100", "10", "0"), "180.00"},
		{"percentage wins over amount", item("2", "100", "10", "55"), "180.00"},
		{"amount discount", item("2", "100", "0", "30"), "170.00"},
		{"discount exceeding subtotal floors at zero", item("1", "50", "0", "80"), "0.00"},
		{"zero quantity", item("0", "100", "0", "0"), "0.00"},
		{"fractional quantity", item("2.5", "10.10", "0", "0"), "25.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateLineItem(tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total.StringFixed(2))
			assert.False(t, got.Total.IsNegative())
			assert.True(t, got.Total.LessThanOrEqual(tt.item.Quantity.Mul(tt.item.UnitPrice)))
		})
	}
}

func TestCalculateLineItemRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		item  LineItem
		field string
	}{
		{"negative quantity", item("-1", "100", "0", "0"), "quantity"},
		{"negative unit price", item("1", "-100", "0", "0"), "unit_price"},
		{"discount over 100", item("1", "100", "101", "0"), "discount_percentage"},
		{"negative discount pct", item("1", "100", "-5", "0"), "discount_percentage"},
		{"negative discount amount", item("1", "100", "0", "-5"), "discount_amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateLineItem(tt.item)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCalculateTotals(t *testing.T) {
	// The worked example: 180 subtotal, 20 fixed discount, 8.5% tax.
	totals, err := CalculateTotals(dec("180"), FinancialConfig{
		DiscountType:  DiscountFixed,
		DiscountValue: dec("20"),
		TaxRate:       dec("8.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "160.00", totals.AfterDiscount.StringFixed(2))
	assert.Equal(t, "13.60", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "173.60", totals.Total.StringFixed(2))
}

func TestCalculateTotalsPercentageDiscount(t *testing.T) {
	totals, err := CalculateTotals(dec("200"), FinancialConfig{
		DiscountType:  DiscountPercentage,
		DiscountValue: dec("25"),
		TaxRate:       dec("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "50.00", totals.DiscountAmount.StringFixed(2))
	assert.Equal(t, "150.00", totals.AfterDiscount.StringFixed(2))
	assert.Equal(t, "15.00", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "165.00", totals.Total.StringFixed(2))
}

func TestCalculateTotalsManualTax(t *testing.T) {
	cfg := FinancialConfig{
		DiscountType:  DiscountFixed,
		DiscountValue: dec("0"),
		TaxRate:       dec("8.5"),
		TaxAmount:     dec("12.34"),
		IsManualTax:   true,
	}
	totals, err := CalculateTotals(dec("100"), cfg)
	require.NoError(t, err)
	// Manual mode takes the entered amount as-is, the rate is ignored.
	assert.Equal(t, "12.34", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "112.34", totals.Total.StringFixed(2))

	// Toggling manual off re-derives from the rate.
	cfg.IsManualTax = false
	totals, err = CalculateTotals(dec("100"), cfg)
	require.NoError(t, err)
	assert.Equal(t, "8.50", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "108.50", totals.Total.StringFixed(2))
}

func TestCalculateTotalsInvariants(t *testing.T) {
	cfgs := []FinancialConfig{
		{DiscountType: DiscountFixed, DiscountValue: dec("20"), TaxRate: dec("8.5")},
		{DiscountType: DiscountPercentage, DiscountValue: dec("33.33"), TaxRate: dec("19")},
		{DiscountType: DiscountFixed, DiscountValue: dec("999"), TaxRate: dec("7")},
		{DiscountType: DiscountPercentage, DiscountValue: dec("100"), TaxRate: dec("100")},
	}
	subtotals := []string{"0", "0.01", "180", "12345.67"}
	for _, cfg := range cfgs {
		for _, s := range subtotals {
			first, err := CalculateTotals(dec(s), cfg)
			require.NoError(t, err)

			// total == afterDiscount + tax exactly.
			assert.True(t, first.Total.Equal(first.AfterDiscount.Add(first.TaxAmount)),
				"subtotal=%s total=%s after=%s tax=%s", s, first.Total, first.AfterDiscount, first.TaxAmount)
			assert.False(t, first.Total.IsNegative())

			// Recomputation is idempotent: same inputs, identical output.
			second, err := CalculateTotals(dec(s), cfg)
			require.NoError(t, err)
			assert.True(t, first.Total.Equal(second.Total))
			assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
		}
	}
}

func TestCalculateTotalsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		cfg      FinancialConfig
	}{
		{"negative subtotal", "-1", FinancialConfig{DiscountType: DiscountFixed}},
		{"negative discount", "100", FinancialConfig{DiscountType: DiscountFixed, DiscountValue: dec("-1")}},
		{"discount pct over 100", "100", FinancialConfig{DiscountType: DiscountPercentage, DiscountValue: dec("101")}},
		{"tax rate over 100", "100", FinancialConfig{DiscountType: DiscountFixed, TaxRate: dec("101")}},
		{"negative manual tax", "100", FinancialConfig{DiscountType: DiscountFixed, TaxAmount: dec("-1"), IsManualTax: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateTotals(dec(tt.subtotal), tt.cfg)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestSumLineItems(t *testing.T) {
	items := []LineItem{
		item("2", "100", "10", "0"),
		item("1", "50", "0", "10"),
	}
	subtotal, err := SumLineItems(items)
	require.NoError(t, err)
	assert.Equal(t, "220.00", subtotal.StringFixed(2))
	assert.Equal(t, "180.00", items[0].Total.StringFixed(2))
	assert.Equal(t, "40.00", items[1].Total.StringFixed(2))
}
