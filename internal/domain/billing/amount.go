package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/money"
)

// InvoiceAmount derives the invoice amount for a billing unit against the
// project's total budget. Hourly billing requires recorded hours at bill
// time; there is no rate-only fallback.
func InvoiceAmount(m *Milestone, projectBudget decimal.Decimal) (decimal.Decimal, error) {
	switch m.BillingType {
	case BillingPercentage:
		if !money.ValidPercent(m.BillingPercentage) {
			return decimal.Zero, newValidationError("billing_percentage", "must be between 0 and 100, got %s", m.BillingPercentage)
		}
		if projectBudget.IsNegative() {
			return decimal.Zero, newValidationError("total_budget", "must not be negative, got %s", projectBudget)
		}
		return money.Round2(money.Percent(projectBudget, m.BillingPercentage)), nil

	case BillingFixed:
		if m.BillableAmount.IsNegative() {
			return decimal.Zero, newValidationError("billable_amount", "must not be negative, got %s", m.BillableAmount)
		}
		return money.Round2(m.BillableAmount), nil

	case BillingHourly:
		if m.BillingRate.IsNegative() {
			return decimal.Zero, newValidationError("billing_rate", "must not be negative, got %s", m.BillingRate)
		}
		if !m.ActualHours.IsPositive() {
			return decimal.Zero, newValidationError("actual_hours", "hourly billing requires recorded hours")
		}
		return money.Round2(m.BillingRate.Mul(m.ActualHours)), nil

	default:
		return decimal.Zero, newValidationError("billing_type", "unknown billing type %q", m.BillingType)
	}
}
