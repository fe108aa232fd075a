package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/billing"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice"
)

type billResponse struct {
	Invoice *invoice.Invoice `json:"invoice"`
	Created bool             `json:"created"`
}

type completeAndBillResponse struct {
	Milestone *billing.Milestone `json:"milestone"`
	Invoice   *invoice.Invoice   `json:"invoice"`
	Created   bool               `json:"created"`
}

// billRequest is the optional body of bill and complete-and-bill calls.
// Hourly billing units may supply hours at bill time.
type billRequest struct {
	ActualHours *decimal.Decimal `json:"actual_hours"`
}

func (h *Handlers) CompleteMilestone(w http.ResponseWriter, r *http.Request) {
	projectID, milestoneID, ok := h.milestoneParams(w, r)
	if !ok {
		return
	}
	m, err := h.Billing.Complete(r.Context(), projectID, milestoneID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

// BillMilestone creates the milestone's invoice. Idempotent: a second call
// returns the existing invoice with created=false instead of failing.
func (h *Handlers) BillMilestone(w http.ResponseWriter, r *http.Request) {
	projectID, milestoneID, ok := h.milestoneParams(w, r)
	if !ok {
		return
	}
	req, err := decodeBillRequest(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	res, err := h.Billing.Bill(r.Context(), projectID, milestoneID, req.ActualHours)
	if err != nil {
		h.writeError(w, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, billResponse{Invoice: res.Invoice, Created: res.Created})
}

// SendMilestoneInvoice flips the draft invoice to sent. Unlike bill this is
// not idempotent: a repeat call is a conflict, since sending notifies the
// customer.
func (h *Handlers) SendMilestoneInvoice(w http.ResponseWriter, r *http.Request) {
	projectID, milestoneID, ok := h.milestoneParams(w, r)
	if !ok {
		return
	}
	inv, err := h.Billing.SendInvoice(r.Context(), projectID, milestoneID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Invoice *invoice.Invoice `json:"invoice"`
	}{inv})
}

// CompleteAndBillMilestone is the composite used by task-completion flows:
// both transitions commit together or neither does.
func (h *Handlers) CompleteAndBillMilestone(w http.ResponseWriter, r *http.Request) {
	projectID, milestoneID, ok := h.milestoneParams(w, r)
	if !ok {
		return
	}
	req, err := decodeBillRequest(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	m, res, err := h.Billing.CompleteAndBill(r.Context(), projectID, milestoneID, req.ActualHours)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, completeAndBillResponse{
		Milestone: m,
		Invoice:   res.Invoice,
		Created:   res.Created,
	})
}

// PromoteTask associates a billable task with a new milestone so task
// completion can reuse the milestone billing pipeline. Idempotent.
func (h *Handlers) PromoteTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid project id"})
		return
	}
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid task id"})
		return
	}
	m, err := h.Billing.PromoteTask(r.Context(), projectID, taskID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, m)
}

func (h *Handlers) milestoneParams(w http.ResponseWriter, r *http.Request) (projectID, milestoneID uuid.UUID, ok bool) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid project id"})
		return uuid.Nil, uuid.Nil, false
	}
	milestoneID, err = uuid.Parse(chi.URLParam(r, "milestoneID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid milestone id"})
		return uuid.Nil, uuid.Nil, false
	}
	return projectID, milestoneID, true
}

func decodeBillRequest(r *http.Request) (billRequest, error) {
	var req billRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		return billRequest{}, err
	}
	return req, nil
}
