package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/quote"
)

// QuoteStore persists quotes and their line items. Derived totals are always
// the output of the quote calculators; this layer never computes money.
type QuoteStore struct {
	db *DB
}

func NewQuoteStore(db *DB) *QuoteStore {
	return &QuoteStore{db: db}
}

func (s *QuoteStore) QuoteByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	var q quote.Quote
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, project_id, status, subtotal, discount_type, discount_value,
			tax_rate, tax_amount, is_manual_tax, total,
			down_payment_percentage, milestone_payment_percentage, final_payment_percentage,
			created_at, updated_at
		FROM quotes WHERE id = $1`, id).Scan(
		&q.ID, &q.ProjectID, &q.Status, &q.Subtotal, &q.DiscountType, &q.DiscountValue,
		&q.TaxRate, &q.TaxAmount, &q.IsManualTax, &q.Total,
		&q.DownPaymentPercentage, &q.MilestonePaymentPercentage, &q.FinalPaymentPercentage,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, quote.ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan quote: %w", err)
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, quote_id, description, category, quantity, unit_price,
			discount_percentage, discount_amount, total
		FROM quote_line_items WHERE quote_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, fmt.Errorf("query line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it quote.LineItem
		if err := rows.Scan(
			&it.ID, &it.QuoteID, &it.Description, &it.Category, &it.Quantity,
			&it.UnitPrice, &it.DiscountPercentage, &it.DiscountAmount, &it.Total,
		); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		q.Items = append(q.Items, it)
	}
	return &q, rows.Err()
}

// SaveFinancials persists the recomputed financial configuration and totals,
// including every line item's derived total, in one transaction.
func (s *QuoteStore) SaveFinancials(ctx context.Context, q *quote.Quote) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE quotes SET subtotal = $1, discount_type = $2, discount_value = $3,
			tax_rate = $4, tax_amount = $5, is_manual_tax = $6, total = $7,
			updated_at = now()
		WHERE id = $8`,
		q.Subtotal, q.DiscountType, q.DiscountValue,
		q.TaxRate, q.TaxAmount, q.IsManualTax, q.Total, q.ID)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrQuoteNotFound
	}

	for _, it := range q.Items {
		if _, err := tx.Exec(ctx,
			`UPDATE quote_line_items SET total = $1 WHERE id = $2 AND quote_id = $3`,
			it.Total, it.ID, q.ID); err != nil {
			return fmt.Errorf("update line item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// MarkSent applies the draft -> sent transition. The caller validates the
// payment schedule first; the guarded update keeps the transition race-free.
func (s *QuoteStore) MarkSent(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx,
		`UPDATE quotes SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		quote.StatusSent, id, quote.StatusDraft)
	if err != nil {
		return fmt.Errorf("mark quote sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrQuoteNotDraft
	}
	return nil
}
