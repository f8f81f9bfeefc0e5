package httpwire

import (
	"errors"
	"fmt"
)

// ErrorCode classifies adapter errors. The taxonomy is deliberately closed:
// connection refusal and ill-formed input are the only failures the adapter
// names. Every other engine failure reaches the caller unchanged.
type ErrorCode int

const (
	// ErrCodeConnectionRefused covers the whole dial-phase failure
	// family: refused, unreachable, and name-resolution failures alike.
	// Callers only branch on "could not connect" versus everything else.
	ErrCodeConnectionRefused ErrorCode = iota

	// ErrCodeValidation indicates ill-formed input rejected before any
	// network activity.
	ErrCodeValidation
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConnectionRefused:
		return "connection_refused"
	case ErrCodeValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a classified adapter error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("httpwire: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConnectionRefusedError wraps a dial-phase failure in the canonical
// connection-refused error.
func NewConnectionRefusedError(err error) *Error {
	return &Error{
		Code:    ErrCodeConnectionRefused,
		Message: err.Error(),
		Err:     err,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// IsConnectionRefused checks whether err is the canonical
// connection-refused error.
func IsConnectionRefused(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnectionRefused
}

// IsValidation checks whether err is an adapter validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeValidation
}
