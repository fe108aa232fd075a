package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/billing"
)

func (s *BillingStore) PromoteTask(ctx context.Context, projectID, taskID uuid.UUID, plannedDate time.Time) (*billing.Milestone, error) {
	var m *billing.Milestone
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var t billing.Task
		err := tx.QueryRow(ctx, `
			SELECT id, project_id, title, milestone_id, is_billable, billing_type,
				billing_percentage, billable_amount, billing_rate, actual_hours
			FROM tasks WHERE id = $1 AND project_id = $2 FOR UPDATE`,
			taskID, projectID).Scan(
			&t.ID, &t.ProjectID, &t.Title, &t.MilestoneID, &t.IsBillable, &t.BillingType,
			&t.BillingPercentage, &t.BillableAmount, &t.BillingRate, &t.ActualHours,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.ErrTaskNotFound
		}
		if err != nil {
			return fmt.Errorf("scan task: %w", err)
		}

		// Already promoted: hand back the existing milestone.
		if t.MilestoneID != nil {
			m, err = milestoneForUpdate(ctx, tx, projectID, *t.MilestoneID)
			return err
		}

		if !t.IsBillable {
			return billing.ErrTaskNotBillable
		}

		m = &billing.Milestone{
			ID:                uuid.New(),
			ProjectID:         projectID,
			Title:             t.Title,
			Status:            billing.MilestonePending,
			PlannedDate:       plannedDate,
			IsBillable:        true,
			BillingType:       t.BillingType,
			BillingPercentage: t.BillingPercentage,
			BillableAmount:    t.BillableAmount,
			BillingRate:       t.BillingRate,
			ActualHours:       t.ActualHours,
			TaskID:            &t.ID,
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO milestones (id, project_id, title, status, planned_date,
				is_billable, billing_type, billing_percentage, billable_amount,
				billing_rate, actual_hours, task_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			m.ID, m.ProjectID, m.Title, m.Status, m.PlannedDate,
			m.IsBillable, m.BillingType, m.BillingPercentage, m.BillableAmount,
			m.BillingRate, m.ActualHours, m.TaskID); err != nil {
			return fmt.Errorf("insert milestone: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE tasks SET milestone_id = $1 WHERE id = $2`, m.ID, taskID); err != nil {
			return fmt.Errorf("link task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
