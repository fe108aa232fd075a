package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/billing"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/quote"
)

type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("encode response")
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses: validation
// errors are 400, missing entities 404, invalid-state transitions 409,
// anything else 500.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	var (
		qv *quote.ValidationError
		bv *billing.ValidationError
	)
	switch {
	case errors.As(err, &qv):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: qv.Message, Details: qv.Field})
	case errors.As(err, &bv):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: bv.Message, Details: bv.Field})
	case errors.Is(err, quote.ErrQuoteNotFound),
		errors.Is(err, billing.ErrMilestoneNotFound),
		errors.Is(err, billing.ErrProjectNotFound),
		errors.Is(err, billing.ErrTaskNotFound),
		errors.Is(err, billing.ErrInvoiceNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, quote.ErrQuoteNotDraft),
		errors.Is(err, billing.ErrMilestoneNotPending),
		errors.Is(err, billing.ErrMilestoneNotCompleted),
		errors.Is(err, billing.ErrMilestoneNotBillable),
		errors.Is(err, billing.ErrTaskNotBillable),
		errors.Is(err, billing.ErrMilestoneNotBilled),
		errors.Is(err, billing.ErrInvoiceAlreadySent):
		h.writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	default:
		h.log.Error().Err(err).Msg("internal error")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}
