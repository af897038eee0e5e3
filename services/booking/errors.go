package booking

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when a create is attempted while another
// create for the same parent is still pending. The caller treats it as a
// no-op: no second upstream request is issued.
var ErrSubmissionInFlight = errors.New("a booking submission is already in flight")

// ErrDraftNotFound is returned when a draft has expired or never existed.
var ErrDraftNotFound = errors.New("booking draft not found or expired")

// ValidationError is a client-side form error; it never reaches the core API.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
