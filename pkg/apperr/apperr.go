// Package apperr defines the error kinds surfaced by workflow operations.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidState     = errors.New("invalid state")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
)

// Error carries a kind sentinel plus the human readable reason.
type Error struct {
	Kind    error
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return newError(ErrNotFound, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(ErrForbidden, format, args...)
}

func InvalidState(format string, args ...any) *Error {
	return newError(ErrInvalidState, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(ErrConflict, format, args...)
}

// Validation builds a ValidationFailed error listing every offending item.
func Validation(message string, details []string) *Error {
	return &Error{Kind: ErrValidationFailed, Message: message, Details: details}
}

// WithDetails attaches per-item details, used by partial-success batches.
func (e *Error) WithDetails(details []string) *Error {
	e.Details = details
	return e
}

// Details returns the detail list of err if it is an *Error.
func Details(err error) []string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Details
	}
	return nil
}
