package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/billing"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice/pdf"
	pdfgen "github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice/pdf/gofpdf"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/quote"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/infra/db/postgres"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/logger"
)

// QuoteStore is the slice of quote persistence the handlers need.
type QuoteStore interface {
	QuoteByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
	SaveFinancials(ctx context.Context, q *quote.Quote) error
	MarkSent(ctx context.Context, id uuid.UUID) error
}

type Handlers struct {
	Quotes  QuoteStore
	Billing *billing.Service
	PDF     pdf.Generator

	log zerolog.Logger
}

func New(db *postgres.DB) *Handlers {
	return &Handlers{
		Quotes:  postgres.NewQuoteStore(db),
		Billing: billing.NewService(postgres.NewBillingStore(db)),
		PDF:     pdfgen.New(),
		log:     logger.WithComponent("http"),
	}
}
