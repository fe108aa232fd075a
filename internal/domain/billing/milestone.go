// Package billing governs the lifecycle that turns completed project work
// into invoices: the milestone state machine, invoice amount derivation, and
// the orchestration of both inside a single transaction.
package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneCancelled MilestoneStatus = "cancelled"
)

type BillingType string

const (
	BillingPercentage BillingType = "percentage"
	BillingFixed      BillingType = "fixed"
	BillingHourly     BillingType = "hourly"
)

// Milestone is the primary billing trigger. InvoiceID is the single source
// of truth for "this milestone has been billed": set means a draft invoice
// exists, BilledAt set means that invoice has been sent.
type Milestone struct {
	ID          uuid.UUID       `json:"id"`
	ProjectID   uuid.UUID       `json:"project_id"`
	Title       string          `json:"title"`
	Status      MilestoneStatus `json:"status"`
	PlannedDate time.Time       `json:"planned_date"`
	ActualDate  *time.Time      `json:"actual_date,omitempty"`

	IsBillable        bool            `json:"is_billable"`
	BillingType       BillingType     `json:"billing_type"`
	BillingPercentage decimal.Decimal `json:"billing_percentage"`
	BillableAmount    decimal.Decimal `json:"billable_amount"`
	BillingRate       decimal.Decimal `json:"billing_rate"`
	ActualHours       decimal.Decimal `json:"actual_hours"`

	// TaskID is set when the milestone was created by promoting a billable
	// task; its billing config was copied from that task.
	TaskID *uuid.UUID `json:"task_id,omitempty"`

	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`
	BilledAt  *time.Time `json:"billed_at,omitempty"`
}

// Task is a billable task associated with a milestone to reuse the billing
// pipeline; its billing config is copied onto the milestone at association
// time, so the bill path only ever reads milestones.
type Task struct {
	ID                uuid.UUID       `json:"id"`
	ProjectID         uuid.UUID       `json:"project_id"`
	Title             string          `json:"title"`
	MilestoneID       *uuid.UUID      `json:"milestone_id,omitempty"`
	IsBillable        bool            `json:"is_billable"`
	BillingType       BillingType     `json:"billing_type"`
	BillingPercentage decimal.Decimal `json:"billing_percentage"`
	BillableAmount    decimal.Decimal `json:"billable_amount"`
	BillingRate       decimal.Decimal `json:"billing_rate"`
	ActualHours       decimal.Decimal `json:"actual_hours"`
}

// Billed reports whether a draft invoice already exists for the milestone.
func (m *Milestone) Billed() bool { return m.InvoiceID != nil }

// Sent reports whether the milestone's invoice has been sent.
func (m *Milestone) Sent() bool { return m.BilledAt != nil }

// CanComplete guards the pending -> completed transition.
func (m *Milestone) CanComplete() error {
	if m.Status != MilestonePending {
		return ErrMilestoneNotPending
	}
	return nil
}

// CanBill guards invoice creation. A milestone that already carries an
// invoice is not an error here: the bill operation is idempotent and the
// caller returns the existing invoice instead.
func (m *Milestone) CanBill() error {
	if !m.IsBillable {
		return ErrMilestoneNotBillable
	}
	if m.Status != MilestoneCompleted {
		return ErrMilestoneNotCompleted
	}
	return nil
}

// CanSendInvoice guards the draft -> sent transition. Re-sending is rejected
// because sending has a customer-visible side effect that must not repeat.
func (m *Milestone) CanSendInvoice() error {
	if !m.Billed() {
		return ErrMilestoneNotBilled
	}
	if m.Sent() {
		return ErrInvoiceAlreadySent
	}
	return nil
}
