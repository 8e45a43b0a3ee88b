package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error that crosses the repository or service boundary wraps exactly one of these.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")

	// ErrUnavailable marks a feature whose backing service is not configured.
	ErrUnavailable = errors.New("service unavailable")
)

// Error carries a machine readable code and a caller facing message on top of its kind.
type Error struct {
	Err     error
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the kind so errors.Is(err, ErrNotFound) works through wrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// Details returns the underlying cause text, if any.
func (e *Error) Details() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

func NotFound(code, message string) *Error {
	return &Error{Err: ErrNotFound, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Err: ErrValidation, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Err: ErrConflict, Code: code, Message: message}
}

func Unavailable(code, message string) *Error {
	return &Error{Err: ErrUnavailable, Code: code, Message: message}
}

func Internal(code, message string, cause error) *Error {
	return &Error{Err: ErrInternal, Code: code, Message: message, Cause: cause}
}

// WithCause attaches the underlying error without changing the kind.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// As extracts an *Error from err. Errors of unknown shape become ErrInternal.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("INTERNAL_ERROR", "internal server error", err)
}
