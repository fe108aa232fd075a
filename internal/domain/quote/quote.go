package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusExpired  Status = "expired"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Quote carries the financial configuration and the derived totals. The
// derived fields (Subtotal, TaxAmount, Total) are always recomputed through
// CalculateTotals before persisting; they are never edited directly.
type Quote struct {
	ID        uuid.UUID       `json:"id"`
	ProjectID uuid.UUID       `json:"project_id"`
	Status    Status          `json:"status"`
	Items     []LineItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`

	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`

	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	IsManualTax bool            `json:"is_manual_tax"`

	Total decimal.Decimal `json:"total"`

	DownPaymentPercentage      decimal.Decimal `json:"down_payment_percentage"`
	MilestonePaymentPercentage decimal.Decimal `json:"milestone_payment_percentage"`
	FinalPaymentPercentage     decimal.Decimal `json:"final_payment_percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineItem is owned by its quote. Total is derived from the other fields and
// recomputed on every write.
type LineItem struct {
	ID                 uuid.UUID       `json:"id"`
	QuoteID            uuid.UUID       `json:"quote_id"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	Total              decimal.Decimal `json:"total"`
}

// Schedule returns the quote's three-part payment split.
func (q *Quote) Schedule() PaymentSchedule {
	return PaymentSchedule{
		DownPayment:      q.DownPaymentPercentage,
		MilestonePayment: q.MilestonePaymentPercentage,
		FinalPayment:     q.FinalPaymentPercentage,
	}
}
