// Package invoice holds the financial document produced by billing a
// milestone. An invoice's amount is immutable once the record exists;
// amendments require a new invoice.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

type Type string

const (
	TypeMilestone Type = "milestone"
	TypeTask      Type = "task"
)

type Invoice struct {
	ID uuid.UUID `json:"id"`
	// MilestoneID back-references the billable unit. The storage layer
	// keeps it unique, which is what makes billing exactly-once even when
	// two requests race.
	MilestoneID   uuid.UUID       `json:"milestone_id"`
	ProjectID     uuid.UUID       `json:"project_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Status        Status          `json:"status"`
	InvoiceType   Type            `json:"invoice_type"`
	Description   string          `json:"description"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DefaultTerms is the payment window applied to new invoices.
const DefaultTerms = 30 * 24 * time.Hour

// FormatNumber renders the sequential per-project invoice number, e.g.
// INV-4F2A-0007 for the seventh invoice of a project.
func FormatNumber(projectID uuid.UUID, seq int64) string {
	short := strings.ToUpper(projectID.String()[:4])
	return fmt.Sprintf("INV-%s-%04d", short, seq)
}
