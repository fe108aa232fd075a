package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handlers) GetInvoice(w http.ResponseWriter, r *http.Request) {
	projectID, invoiceID, ok := h.invoiceParams(w, r)
	if !ok {
		return
	}
	inv, err := h.Billing.Invoice(r.Context(), projectID, invoiceID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inv)
}

// DownloadInvoice renders the invoice document on demand; nothing is stored.
func (h *Handlers) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	projectID, invoiceID, ok := h.invoiceParams(w, r)
	if !ok {
		return
	}
	inv, err := h.Billing.Invoice(r.Context(), projectID, invoiceID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	pdfBytes, err := h.PDF.Generate(*inv)
	if err != nil {
		h.log.Error().Err(err).Str("invoice_number", inv.InvoiceNumber).Msg("pdf generation failed")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "pdf generation failed"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, inv.InvoiceNumber))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func (h *Handlers) invoiceParams(w http.ResponseWriter, r *http.Request) (projectID, invoiceID uuid.UUID, ok bool) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid project id"})
		return uuid.Nil, uuid.Nil, false
	}
	invoiceID, err = uuid.Parse(chi.URLParam(r, "invoiceID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid invoice id"})
		return uuid.Nil, uuid.Nil, false
	}
	return projectID, invoiceID, true
}
