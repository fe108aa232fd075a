package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/billing"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice"
)

// BillingStore implements billing.Store. Every mutating method runs inside
// a single transaction that locks the milestone row first, so the state
// check and the writes cannot interleave with a concurrent caller. This,
// plus the unique constraint on invoices.milestone_id, is what makes the
// bill operation exactly-once.
type BillingStore struct {
	db *DB
}

func NewBillingStore(db *DB) *BillingStore {
	return &BillingStore{db: db}
}

const milestoneCols = `id, project_id, title, status, planned_date, actual_date,
	is_billable, billing_type, billing_percentage, billable_amount, billing_rate,
	actual_hours, task_id, invoice_id, billed_at`

func scanMilestone(row pgx.Row) (*billing.Milestone, error) {
	var m billing.Milestone
	err := row.Scan(
		&m.ID, &m.ProjectID, &m.Title, &m.Status, &m.PlannedDate, &m.ActualDate,
		&m.IsBillable, &m.BillingType, &m.BillingPercentage, &m.BillableAmount,
		&m.BillingRate, &m.ActualHours, &m.TaskID, &m.InvoiceID, &m.BilledAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, billing.ErrMilestoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan milestone: %w", err)
	}
	return &m, nil
}

func (s *BillingStore) MilestoneByID(ctx context.Context, projectID, milestoneID uuid.UUID) (*billing.Milestone, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+milestoneCols+` FROM milestones WHERE id = $1 AND project_id = $2`,
		milestoneID, projectID)
	return scanMilestone(row)
}

// milestoneForUpdate loads the milestone with a row lock held for the rest
// of the transaction.
func milestoneForUpdate(ctx context.Context, tx pgx.Tx, projectID, milestoneID uuid.UUID) (*billing.Milestone, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+milestoneCols+` FROM milestones WHERE id = $1 AND project_id = $2 FOR UPDATE`,
		milestoneID, projectID)
	return scanMilestone(row)
}

func (s *BillingStore) CompleteMilestone(ctx context.Context, projectID, milestoneID uuid.UUID, now time.Time) (*billing.Milestone, error) {
	var m *billing.Milestone
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		m, err = completeTx(ctx, tx, projectID, milestoneID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func completeTx(ctx context.Context, tx pgx.Tx, projectID, milestoneID uuid.UUID, now time.Time) (*billing.Milestone, error) {
	m, err := milestoneForUpdate(ctx, tx, projectID, milestoneID)
	if err != nil {
		return nil, err
	}
	if err := m.CanComplete(); err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx,
		`UPDATE milestones SET status = $1, actual_date = $2 WHERE id = $3`,
		billing.MilestoneCompleted, now, milestoneID)
	if err != nil {
		return nil, fmt.Errorf("complete milestone: %w", err)
	}
	m.Status = billing.MilestoneCompleted
	m.ActualDate = &now
	return m, nil
}

func (s *BillingStore) BillMilestone(ctx context.Context, projectID, milestoneID uuid.UUID, hours *decimal.Decimal, build billing.BuildInvoice) (billing.BillResult, error) {
	var res billing.BillResult
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		res, err = billTx(ctx, tx, projectID, milestoneID, hours, build)
		return err
	})
	if uniqueViolation(err) {
		// A concurrent bill slipped in between our read and write. The
		// invoice it created is the answer, not an error.
		return s.existingBill(ctx, projectID, milestoneID)
	}
	if err != nil {
		return billing.BillResult{}, err
	}
	return res, nil
}

func billTx(ctx context.Context, tx pgx.Tx, projectID, milestoneID uuid.UUID, hours *decimal.Decimal, build billing.BuildInvoice) (billing.BillResult, error) {
	m, err := milestoneForUpdate(ctx, tx, projectID, milestoneID)
	if err != nil {
		return billing.BillResult{}, err
	}

	// Idempotency guard: invoice_id set means billed, return what exists.
	if m.InvoiceID != nil {
		inv, err := invoiceByIDTx(ctx, tx, projectID, *m.InvoiceID)
		if err != nil {
			return billing.BillResult{}, err
		}
		return billing.BillResult{Invoice: inv, Created: false}, nil
	}

	if hours != nil {
		m.ActualHours = *hours
	}

	var budget decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT total_budget FROM projects WHERE id = $1`, projectID).Scan(&budget)
	if errors.Is(err, pgx.ErrNoRows) {
		return billing.BillResult{}, billing.ErrProjectNotFound
	}
	if err != nil {
		return billing.BillResult{}, fmt.Errorf("load project budget: %w", err)
	}

	var seq int64
	err = tx.QueryRow(ctx, `
		INSERT INTO invoice_sequences (project_id, last_value) VALUES ($1, 1)
		ON CONFLICT (project_id) DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value`, projectID).Scan(&seq)
	if err != nil {
		return billing.BillResult{}, fmt.Errorf("next invoice number: %w", err)
	}

	inv, err := build(m, budget, seq)
	if err != nil {
		return billing.BillResult{}, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (id, milestone_id, project_id, invoice_number, amount,
			status, invoice_type, description, issue_date, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		inv.ID, inv.MilestoneID, inv.ProjectID, inv.InvoiceNumber, inv.Amount,
		inv.Status, inv.InvoiceType, inv.Description, inv.IssueDate, inv.DueDate, inv.CreatedAt)
	if err != nil {
		return billing.BillResult{}, fmt.Errorf("insert invoice: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE milestones SET invoice_id = $1, actual_hours = $2 WHERE id = $3`,
		inv.ID, m.ActualHours, milestoneID)
	if err != nil {
		return billing.BillResult{}, fmt.Errorf("set milestone invoice: %w", err)
	}

	return billing.BillResult{Invoice: inv, Created: true}, nil
}

// existingBill resolves the invoice a concurrent caller created.
func (s *BillingStore) existingBill(ctx context.Context, projectID, milestoneID uuid.UUID) (billing.BillResult, error) {
	m, err := s.MilestoneByID(ctx, projectID, milestoneID)
	if err != nil {
		return billing.BillResult{}, err
	}
	if m.InvoiceID == nil {
		return billing.BillResult{}, billing.ErrInvoiceNotFound
	}
	inv, err := s.InvoiceByID(ctx, projectID, *m.InvoiceID)
	if err != nil {
		return billing.BillResult{}, err
	}
	return billing.BillResult{Invoice: inv, Created: false}, nil
}

func (s *BillingStore) CompleteAndBillMilestone(ctx context.Context, projectID, milestoneID uuid.UUID, hours *decimal.Decimal, now time.Time, build billing.BuildInvoice) (*billing.Milestone, billing.BillResult, error) {
	var (
		m   *billing.Milestone
		res billing.BillResult
	)
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		if m, err = completeTx(ctx, tx, projectID, milestoneID, now); err != nil {
			return err
		}
		res, err = billTx(ctx, tx, projectID, milestoneID, hours, build)
		return err
	})
	if err != nil {
		return nil, billing.BillResult{}, err
	}
	m.InvoiceID = &res.Invoice.ID
	return m, res, nil
}

func (s *BillingStore) SendMilestoneInvoice(ctx context.Context, projectID, milestoneID uuid.UUID, now time.Time) (*invoice.Invoice, error) {
	var inv *invoice.Invoice
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		m, err := milestoneForUpdate(ctx, tx, projectID, milestoneID)
		if err != nil {
			return err
		}
		if err := m.CanSendInvoice(); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE milestones SET billed_at = $1 WHERE id = $2`, now, milestoneID); err != nil {
			return fmt.Errorf("set billed_at: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE invoices SET status = $1 WHERE id = $2`, invoice.StatusSent, *m.InvoiceID); err != nil {
			return fmt.Errorf("mark invoice sent: %w", err)
		}
		inv, err = invoiceByIDTx(ctx, tx, projectID, *m.InvoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *BillingStore) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
