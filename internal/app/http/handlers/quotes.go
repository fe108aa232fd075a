package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/quote"
)

// patchFinancialsRequest carries a partial update to a quote's discount/tax
// configuration. Absent fields keep their current value; switching
// is_manual_tax recomputes tax immediately through the cascade.
type patchFinancialsRequest struct {
	DiscountType  *quote.DiscountType `json:"discount_type"`
	DiscountValue *decimal.Decimal    `json:"discount_value"`
	TaxRate       *decimal.Decimal    `json:"tax_rate"`
	TaxAmount     *decimal.Decimal    `json:"tax_amount"`
	IsManualTax   *bool               `json:"is_manual_tax"`
}

// PatchQuoteFinancials applies a partial financial config change, runs the
// one authoritative totals cascade, persists and returns the full quote.
func (h *Handlers) PatchQuoteFinancials(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "quoteID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid quote id"})
		return
	}

	var req patchFinancialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	q, err := h.Quotes.QuoteByID(r.Context(), quoteID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if req.DiscountType != nil {
		q.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		q.DiscountValue = *req.DiscountValue
	}
	if req.TaxRate != nil {
		q.TaxRate = *req.TaxRate
	}
	if req.TaxAmount != nil {
		q.TaxAmount = *req.TaxAmount
	}
	if req.IsManualTax != nil {
		q.IsManualTax = *req.IsManualTax
	}

	if err := recomputeQuote(q); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.Quotes.SaveFinancials(r.Context(), q); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, q)
}

// SendQuote applies draft -> sent. A draft may hold an invalid payment
// schedule; sending one may not, so the schedule is validated here.
func (h *Handlers) SendQuote(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "quoteID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid quote id"})
		return
	}

	q, err := h.Quotes.QuoteByID(r.Context(), quoteID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if q.Status != quote.StatusDraft {
		h.writeError(w, quote.ErrQuoteNotDraft)
		return
	}
	if err := q.Schedule().Validate(); err != nil {
		h.writeError(w, err)
		return
	}
	if err := recomputeQuote(q); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.Quotes.MarkSent(r.Context(), quoteID); err != nil {
		h.writeError(w, err)
		return
	}
	q.Status = quote.StatusSent
	h.writeJSON(w, http.StatusOK, q)
}

// recomputeQuote reruns line-item totals and the quote cascade in place.
func recomputeQuote(q *quote.Quote) error {
	subtotal, err := quote.SumLineItems(q.Items)
	if err != nil {
		return err
	}
	totals, err := quote.CalculateTotals(subtotal, quote.FinancialConfig{
		DiscountType:  q.DiscountType,
		DiscountValue: q.DiscountValue,
		TaxRate:       q.TaxRate,
		TaxAmount:     q.TaxAmount,
		IsManualTax:   q.IsManualTax,
	})
	if err != nil {
		return err
	}
	q.Subtotal = totals.Subtotal
	q.TaxAmount = totals.TaxAmount
	q.Total = totals.Total
	return nil
}
