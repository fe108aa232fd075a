package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/app/config"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/app/http/handlers"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/app/http/middleware"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/infra/db/postgres"
)

func NewRouter(cfg config.Config, db *postgres.DB) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)

	h := handlers.New(db)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Route("/quotes/{quoteID}", func(r chi.Router) {
			r.Patch("/financials", h.PatchQuoteFinancials)
			r.Post("/send", h.SendQuote)
		})

		r.Route("/projects/{projectID}", func(r chi.Router) {
			r.Post("/tasks/{taskID}/promote", h.PromoteTask)
			r.Route("/milestones/{milestoneID}", func(r chi.Router) {
				r.Post("/complete", h.CompleteMilestone)
				r.Post("/bill", h.BillMilestone)
				r.Post("/send-invoice", h.SendMilestoneInvoice)
				r.Post("/complete-and-bill", h.CompleteAndBillMilestone)
			})
			r.Route("/invoices/{invoiceID}", func(r chi.Router) {
				r.Get("/", h.GetInvoice)
				r.Get("/download", h.DownloadInvoice)
			})
		})
	})

	return r
}
