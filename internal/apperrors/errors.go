package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrNotPermitted indicates the caller lacks the required privilege.
// It is surfaced generically so callers cannot learn which records exist.
var ErrNotPermitted = errors.New("not permitted")

// ErrInvalidCredentials indicates a failed login. Deliberately does not say
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError reports a malformed or missing input field. The field name
// is surfaced to the submitting user so the failure is actionable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError wraps a storage or aggregation failure. It is transient from
// the caller's perspective and safe to retry.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
