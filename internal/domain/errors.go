package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrValidation           = errors.New("validation error")
	ErrNoCustomerSelected   = errors.New("no customer selected")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HasField reports whether any collected error concerns field.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// DuplicateEmailError is returned when the store rejects a customer write
// because another customer already owns the email.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %q is already registered", e.Email)
}

func (e *DuplicateEmailError) Unwrap() error { return ErrAlreadyExists }

// InvalidDateError reports a purchase date that does not match DD/MM/YYYY.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: use DD/MM/YYYY", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return ErrValidation }

// InvalidAmountError reports a total value that is not a non-negative number.
type InvalidAmountError struct {
	Value string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: must be a non-negative number", e.Value)
}

func (e *InvalidAmountError) Unwrap() error { return ErrValidation }

// IOError wraps a failure writing an export file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LocalityLookupWarning signals that the remote locality lookup failed and
// the embedded fallback table is in use. It is never fatal.
type LocalityLookupWarning struct {
	Err error
}

func (w *LocalityLookupWarning) Error() string {
	return fmt.Sprintf("locality lookup failed, using fallback data: %v", w.Err)
}

func (w *LocalityLookupWarning) Unwrap() error { return w.Err }
