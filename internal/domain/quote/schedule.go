package quote

import (
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/money"
)

var scheduleTotal = decimal.NewFromInt(100)

// PaymentSchedule is the three-part percentage split of a quote's value.
type PaymentSchedule struct {
	DownPayment      decimal.Decimal `json:"down_payment_percentage"`
	MilestonePayment decimal.Decimal `json:"milestone_payment_percentage"`
	FinalPayment     decimal.Decimal `json:"final_payment_percentage"`
}

// Sum returns the schedule's total percentage.
func (s PaymentSchedule) Sum() decimal.Decimal {
	return s.DownPayment.Add(s.MilestonePayment).Add(s.FinalPayment)
}

// Validate checks each part is within [0,100] and the parts sum to exactly
// 100. The reported sum lets the caller prompt for correction. A draft quote
// may hold an invalid schedule; sending one may not.
func (s PaymentSchedule) Validate() error {
	if !money.ValidPercent(s.DownPayment) {
		return newValidationError("down_payment_percentage", "must be between 0 and 100, got %s", s.DownPayment)
	}
	if !money.ValidPercent(s.MilestonePayment) {
		return newValidationError("milestone_payment_percentage", "must be between 0 and 100, got %s", s.MilestonePayment)
	}
	if !money.ValidPercent(s.FinalPayment) {
		return newValidationError("final_payment_percentage", "must be between 0 and 100, got %s", s.FinalPayment)
	}
	if sum := s.Sum(); !sum.Equal(scheduleTotal) {
		return newValidationError("payment_schedule", "percentages must sum to exactly 100, got %s", sum)
	}
	return nil
}
