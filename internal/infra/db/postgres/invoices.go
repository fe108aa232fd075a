package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/billing"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice"
)

const invoiceCols = `id, milestone_id, project_id, invoice_number, amount,
	status, invoice_type, description, issue_date, due_date, created_at`

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.MilestoneID, &inv.ProjectID, &inv.InvoiceNumber, &inv.Amount,
		&inv.Status, &inv.InvoiceType, &inv.Description, &inv.IssueDate, &inv.DueDate,
		&inv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, billing.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	return &inv, nil
}

func (s *BillingStore) InvoiceByID(ctx context.Context, projectID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE id = $1 AND project_id = $2`,
		invoiceID, projectID)
	return scanInvoice(row)
}

func invoiceByIDTx(ctx context.Context, tx pgx.Tx, projectID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE id = $1 AND project_id = $2`,
		invoiceID, projectID)
	return scanInvoice(row)
}
