package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice"
)

// BillResult is what a bill call hands back: the invoice for the milestone
// and whether this call created it. Created=false means the idempotency
// guard found an existing invoice.
type BillResult struct {
	Invoice *invoice.Invoice `json:"invoice"`
	Created bool             `json:"created"`
}

// BuildInvoice constructs the invoice for a milestone once the store has the
// milestone locked. It runs inside the store's transaction: any error aborts
// the whole operation. budget is the project's total budget, seq the next
// value of the project's invoice sequence.
type BuildInvoice func(m *Milestone, budget decimal.Decimal, seq int64) (*invoice.Invoice, error)

// Store is the persistence boundary for billing. Implementations own the
// transaction for each mutating call: the milestone row is locked for the
// duration, so the state check and the writes are atomic and two concurrent
// bill calls cannot both create an invoice.
type Store interface {
	MilestoneByID(ctx context.Context, projectID, milestoneID uuid.UUID) (*Milestone, error)

	// CompleteMilestone applies pending -> completed, setting ActualDate.
	CompleteMilestone(ctx context.Context, projectID, milestoneID uuid.UUID, now time.Time) (*Milestone, error)

	// BillMilestone creates the milestone's invoice exactly once. If the
	// milestone already carries an invoice it is returned with
	// Created=false. hours, when non-nil, is recorded on the milestone
	// before build runs (hourly billing supplies hours at bill time).
	BillMilestone(ctx context.Context, projectID, milestoneID uuid.UUID, hours *decimal.Decimal, build BuildInvoice) (BillResult, error)

	// CompleteAndBillMilestone is the composite transition: completion and
	// invoice creation commit together or not at all.
	CompleteAndBillMilestone(ctx context.Context, projectID, milestoneID uuid.UUID, hours *decimal.Decimal, now time.Time, build BuildInvoice) (*Milestone, BillResult, error)

	// PromoteTask turns a billable task into a pending milestone carrying
	// the task's billing config, the second entry point into the billing
	// pipeline. Idempotent: a task already promoted returns its milestone.
	PromoteTask(ctx context.Context, projectID, taskID uuid.UUID, plannedDate time.Time) (*Milestone, error)

	// SendMilestoneInvoice sets BilledAt and flips the invoice to sent.
	SendMilestoneInvoice(ctx context.Context, projectID, milestoneID uuid.UUID, now time.Time) (*invoice.Invoice, error)

	InvoiceByID(ctx context.Context, projectID, invoiceID uuid.UUID) (*invoice.Invoice, error)
}
