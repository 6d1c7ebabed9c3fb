// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import "errors"

var (
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrDanglingOrderLine indicates an order line whose menu item could not
	// be resolved after a successful insert. This is a data-integrity bug and
	// must never be silently dropped.
	ErrDanglingOrderLine = errors.New("order line references a menu item that does not exist")
)

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries a human-readable message plus the full list of
// per-field problems. It always maps to a 400 response.
type ValidationError struct {
	Message string
	Details []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError whose top-level message is the
// first field problem
func NewValidationError(details []FieldError) *ValidationError {
	msg := "Invalid request"
	if len(details) > 0 {
		msg = details[0].Message
	}
	return &ValidationError{Message: msg, Details: details}
}

// NewValidationMessage builds a ValidationError with a bare message and no
// field details
func NewValidationMessage(message string) *ValidationError {
	return &ValidationError{Message: message}
}
