package billing

import (
	"errors"
	"fmt"
)

var (
	// ErrMilestoneNotFound matches standard 404 behavior.
	ErrMilestoneNotFound = errors.New("milestone not found")

	// ErrProjectNotFound is returned when the project backing a billing
	// operation does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvoiceNotFound matches standard 404 behavior.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrTaskNotFound matches standard 404 behavior.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNotBillable is returned when promoting a task that carries no
	// billing configuration.
	ErrTaskNotBillable = errors.New("task is not billable")

	// ErrMilestoneNotPending protects the complete transition.
	ErrMilestoneNotPending = errors.New("milestone is not pending, cannot complete")

	// ErrMilestoneNotCompleted protects the bill transition. Only completed
	// milestones can be billed.
	ErrMilestoneNotCompleted = errors.New("milestone is not completed, cannot bill")

	// ErrMilestoneNotBillable is returned when billing a unit that carries
	// no billing configuration.
	ErrMilestoneNotBillable = errors.New("milestone is not billable")

	// ErrMilestoneNotBilled protects send-invoice: there is no draft
	// invoice to send.
	ErrMilestoneNotBilled = errors.New("milestone has no invoice to send")

	// ErrInvoiceAlreadySent rejects repeated send-invoice calls. Unlike
	// bill, sending is not idempotent: it implies a customer notification.
	ErrInvoiceAlreadySent = errors.New("invoice has already been sent")
)

// ValidationError reports a malformed billing input (bad percentage, hourly
// billing without hours). Maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
