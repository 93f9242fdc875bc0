package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies store failures. It is kept for diagnostics and never
// serialised to clients.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindConnectionFailure
	KindConstraintViolation
)

// String returns the log-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindConnectionFailure:
		return "connection_failure"
	case KindConstraintViolation:
		return "constraint_violation"
	default:
		return "unknown"
	}
}

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Kind    Kind   `json:"-"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code, so wrapped store failures compare
// equal to the predefined sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error. The kind of the wrapped error,
// if any, is carried over.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Kind: KindOf(err), Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound            = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrConflict            = New("CONFLICT", http.StatusConflict, "conflict")
	ErrConnectionFailure   = New("CONNECTION_FAILURE", http.StatusInternalServerError, "store unavailable")
	ErrConstraintViolation = New("CONSTRAINT_VIOLATION", http.StatusInternalServerError, "constraint violation")
	ErrValidation          = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal            = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss           = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FromKind wraps a store error into the sentinel matching its kind.
func FromKind(kind Kind, err error) *Error {
	var base *Error
	switch kind {
	case KindNotFound:
		base = ErrNotFound
	case KindConflict:
		base = ErrConflict
	case KindConnectionFailure:
		base = ErrConnectionFailure
	case KindConstraintViolation:
		base = ErrConstraintViolation
	default:
		base = ErrInternal
	}
	return &Error{Code: base.Code, Status: base.Status, Message: base.Message, Kind: kind, Err: err}
}

// KindOf returns the first non-unknown kind found in the error chain.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok && e != nil && e.Kind != KindUnknown {
			return e.Kind
		}
		err = errors.Unwrap(err)
	}
	return KindUnknown
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
