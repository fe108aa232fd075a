package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/logger"
)

// Service composes the milestone state machine with invoice generation. It
// is the only layer that commits billing side effects; the calculators it
// calls are pure. Each request recomputes from persisted truth, so the
// service itself holds no mutable state.
type Service struct {
	store Store
	now   func() time.Time
	log   zerolog.Logger
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		log:   logger.WithComponent("billing"),
	}
}

// Complete applies the pending -> completed transition.
func (s *Service) Complete(ctx context.Context, projectID, milestoneID uuid.UUID) (*Milestone, error) {
	m, err := s.store.CompleteMilestone(ctx, projectID, milestoneID, s.now())
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("milestone_id", milestoneID.String()).
		Str("project_id", projectID.String()).
		Msg("milestone completed")
	return m, nil
}

// Bill creates the milestone's invoice exactly once. Repeat calls return
// the existing invoice with Created=false.
func (s *Service) Bill(ctx context.Context, projectID, milestoneID uuid.UUID, hours *decimal.Decimal) (BillResult, error) {
	res, err := s.store.BillMilestone(ctx, projectID, milestoneID, hours, s.buildInvoice(projectID))
	if err != nil {
		return BillResult{}, err
	}
	s.log.Info().
		Str("milestone_id", milestoneID.String()).
		Str("invoice_number", res.Invoice.InvoiceNumber).
		Bool("created", res.Created).
		Msg("milestone billed")
	return res, nil
}

// CompleteAndBill is the composite used by task-completion flows. Both
// effects persist together or neither does.
func (s *Service) CompleteAndBill(ctx context.Context, projectID, milestoneID uuid.UUID, hours *decimal.Decimal) (*Milestone, BillResult, error) {
	m, res, err := s.store.CompleteAndBillMilestone(ctx, projectID, milestoneID, hours, s.now(), s.buildInvoice(projectID))
	if err != nil {
		return nil, BillResult{}, err
	}
	s.log.Info().
		Str("milestone_id", milestoneID.String()).
		Str("invoice_number", res.Invoice.InvoiceNumber).
		Bool("created", res.Created).
		Msg("milestone completed and billed")
	return m, res, nil
}

// PromoteTask associates a billable task with a new pending milestone so it
// can run through the regular billing pipeline.
func (s *Service) PromoteTask(ctx context.Context, projectID, taskID uuid.UUID) (*Milestone, error) {
	m, err := s.store.PromoteTask(ctx, projectID, taskID, s.now())
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("task_id", taskID.String()).
		Str("milestone_id", m.ID.String()).
		Msg("task promoted to milestone")
	return m, nil
}

// SendInvoice marks the milestone's draft invoice as sent. Rejected with
// ErrInvoiceAlreadySent on repetition.
func (s *Service) SendInvoice(ctx context.Context, projectID, milestoneID uuid.UUID) (*invoice.Invoice, error) {
	inv, err := s.store.SendMilestoneInvoice(ctx, projectID, milestoneID, s.now())
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("milestone_id", milestoneID.String()).
		Str("invoice_number", inv.InvoiceNumber).
		Msg("invoice sent")
	return inv, nil
}

// Invoice fetches a single invoice.
func (s *Service) Invoice(ctx context.Context, projectID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	return s.store.InvoiceByID(ctx, projectID, invoiceID)
}

// buildInvoice is the invoice construction step run by the store inside its
// transaction, with the milestone row locked.
func (s *Service) buildInvoice(projectID uuid.UUID) BuildInvoice {
	return func(m *Milestone, budget decimal.Decimal, seq int64) (*invoice.Invoice, error) {
		if err := m.CanBill(); err != nil {
			return nil, err
		}
		amount, err := InvoiceAmount(m, budget)
		if err != nil {
			return nil, err
		}
		invType := invoice.TypeMilestone
		if m.TaskID != nil {
			invType = invoice.TypeTask
		}
		now := s.now()
		return &invoice.Invoice{
			ID:            uuid.New(),
			MilestoneID:   m.ID,
			ProjectID:     projectID,
			InvoiceNumber: invoice.FormatNumber(projectID, seq),
			Amount:        amount,
			Status:        invoice.StatusDraft,
			InvoiceType:   invType,
			Description:   m.Title,
			IssueDate:     now,
			DueDate:       now.Add(invoice.DefaultTerms),
			CreatedAt:     now,
		}, nil
	}
}
