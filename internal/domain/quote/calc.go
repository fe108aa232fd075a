package quote

import (
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/money"
)

// LineItemTotals is the result of the line-item calculation.
type LineItemTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// CalculateLineItem computes a single line's subtotal, discount and total.
// A percentage discount takes precedence over an absolute discount amount;
// when both are supplied the amount is ignored. Out-of-range inputs are
// rejected rather than clamped, since silent clamping would mask a
// unit-entry bug upstream.
func CalculateLineItem(it LineItem) (LineItemTotals, error) {
	if it.Quantity.IsNegative() {
		return LineItemTotals{}, newValidationError("quantity", "must not be negative, got %s", it.Quantity)
	}
	if it.UnitPrice.IsNegative() {
		return LineItemTotals{}, newValidationError("unit_price", "must not be negative, got %s", it.UnitPrice)
	}
	if !money.ValidPercent(it.DiscountPercentage) {
		return LineItemTotals{}, newValidationError("discount_percentage", "must be between 0 and 100, got %s", it.DiscountPercentage)
	}
	if it.DiscountAmount.IsNegative() {
		return LineItemTotals{}, newValidationError("discount_amount", "must not be negative, got %s", it.DiscountAmount)
	}

	subtotal := it.Quantity.Mul(it.UnitPrice)

	discount := it.DiscountAmount
	if it.DiscountPercentage.IsPositive() {
		discount = money.Percent(subtotal, it.DiscountPercentage)
	}

	return LineItemTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    money.Round2(money.NonNegative(subtotal.Sub(discount))),
	}, nil
}

// FinancialConfig is the quote-level discount/tax configuration fed into the
// totals cascade.
type FinancialConfig struct {
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	IsManualTax   bool
}

// Totals is the full output of the quote financial cascade.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	AfterDiscount  decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// CalculateTotals runs the subtotal -> discount -> tax -> total cascade.
// This is the only implementation of the cascade in the codebase; the
// financials handler and the store both go through it, so the persisted
// totals and any preview the caller renders cannot diverge.
//
// Manual tax and rate-derived tax are mutually exclusive display modes over
// the same underlying tax amount: with IsManualTax the entered TaxAmount is
// taken as-is, otherwise tax is derived from TaxRate. Intermediate values
// keep full precision; rounding happens once per user-visible figure.
func CalculateTotals(subtotal decimal.Decimal, cfg FinancialConfig) (Totals, error) {
	if subtotal.IsNegative() {
		return Totals{}, newValidationError("subtotal", "must not be negative, got %s", subtotal)
	}
	if cfg.DiscountValue.IsNegative() {
		return Totals{}, newValidationError("discount_value", "must not be negative, got %s", cfg.DiscountValue)
	}
	if cfg.DiscountType == DiscountPercentage && !money.ValidPercent(cfg.DiscountValue) {
		return Totals{}, newValidationError("discount_value", "percentage must be between 0 and 100, got %s", cfg.DiscountValue)
	}
	if !money.ValidPercent(cfg.TaxRate) {
		return Totals{}, newValidationError("tax_rate", "must be between 0 and 100, got %s", cfg.TaxRate)
	}
	if cfg.TaxAmount.IsNegative() {
		return Totals{}, newValidationError("tax_amount", "must not be negative, got %s", cfg.TaxAmount)
	}

	discount := cfg.DiscountValue
	if cfg.DiscountType == DiscountPercentage {
		discount = money.Percent(subtotal, cfg.DiscountValue)
	}

	afterDiscount := money.Round2(money.NonNegative(subtotal.Sub(discount)))

	var tax decimal.Decimal
	if cfg.IsManualTax {
		tax = money.Round2(cfg.TaxAmount)
	} else {
		tax = money.Round2(money.Percent(afterDiscount, cfg.TaxRate))
	}

	return Totals{
		Subtotal:       money.Round2(subtotal),
		DiscountAmount: money.Round2(discount),
		AfterDiscount:  afterDiscount,
		TaxAmount:      tax,
		Total:          afterDiscount.Add(tax),
	}, nil
}

// SumLineItems recomputes every line item's totals and returns the quote
// subtotal. The items' Total fields are updated in place.
func SumLineItems(items []LineItem) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for i := range items {
		t, err := CalculateLineItem(items[i])
		if err != nil {
			return decimal.Zero, err
		}
		items[i].Total = t.Total
		subtotal = subtotal.Add(t.Total)
	}
	return subtotal, nil
}
