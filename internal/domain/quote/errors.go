package quote

import (
	"errors"
	"fmt"
)

var (
	// ErrQuoteNotFound matches standard 404 behavior.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrQuoteNotDraft protects the send transition. Only draft quotes can
	// be sent.
	ErrQuoteNotDraft = errors.New("quote is not in draft state, cannot send")
)

// ValidationError reports a malformed financial input. It is raised before
// any persistence happens and maps to a 400 at the HTTP boundary.
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
