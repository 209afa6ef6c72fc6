package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so callers can decide between
// re-prompting the user, reporting a warning, or aborting.
type Kind string

const (
	// KindValidation indicates bad or malformed input from the user.
	KindValidation Kind = "validation"
	// KindNotFound indicates a requested record does not exist.
	KindNotFound Kind = "not_found"
	// KindConflict indicates a uniqueness or referential constraint was violated.
	KindConflict Kind = "conflict"
	// KindUnavailable indicates the storage backend could not be reached.
	KindUnavailable Kind = "unavailable"
	// KindInternal indicates an unexpected failure.
	KindInternal Kind = "internal"
)

// AppError represents an application error with a kind and error code
type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// WithCause attaches the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// New creates a new application error
func New(kind Kind, code string, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error
func NewValidationError(code string, message string) *AppError {
	return New(KindValidation, code, message)
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(code string, message string) *AppError {
	return New(KindNotFound, code, message)
}

// NewConflictError creates a conflict error
func NewConflictError(code string, message string) *AppError {
	return New(KindConflict, code, message)
}

// NewUnavailableError creates a storage-unavailable error
func NewUnavailableError(code string, message string) *AppError {
	return New(KindUnavailable, code, message)
}

// NewInternalError creates an internal error
func NewInternalError(code string, message string) *AppError {
	return New(KindInternal, code, message)
}

// KindOf returns the kind of err, or KindInternal for non-AppError values.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Wrap converts an arbitrary error into an AppError of the given kind,
// preserving the original as the cause. A nil error stays nil; an existing
// AppError is returned unchanged.
func Wrap(err error, kind Kind, code string, message string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(kind, code, message).WithCause(err)
}
