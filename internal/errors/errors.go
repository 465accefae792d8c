package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Validation errors
	ErrCodeValidation = "VALIDATION_ERROR"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeConflict = "CONFLICT"

	// Service errors
	ErrCodeStorage       = "STORAGE_ERROR"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Kind classifies an Error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindStorage:
		return "StorageError"
	default:
		return "InternalError"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) code() string {
	switch k {
	case KindValidation:
		return ErrCodeValidation
	case KindNotFound:
		return ErrCodeNotFound
	case KindConflict:
		return ErrCodeConflict
	case KindUnauthorized:
		return ErrCodeUnauthorized
	case KindForbidden:
		return ErrCodeForbidden
	case KindStorage:
		return ErrCodeStorage
	default:
		return ErrCodeInternalError
	}
}

// Error is a typed application failure. Services return it; the HTTP layer
// renders it.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, ErrNotFound) works
// for every not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Code == "" && t.Kind == e.Kind
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Code: kind.code(), Message: message}
}

// Kind markers for errors.Is checks
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrStorage      = &Error{Kind: KindStorage}
)

func Validation(message string, details interface{}) *Error {
	e := newError(KindValidation, message)
	e.Details = details
	return e
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return newError(KindNotFound, message)
}

func Conflict(message string) *Error {
	if message == "" {
		message = "Resource conflict"
	}
	return newError(KindConflict, message)
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return newError(KindUnauthorized, message)
}

// InvalidCredentials is an Unauthorized error with its own code.
func InvalidCredentials() *Error {
	e := newError(KindUnauthorized, "Incorrect username or password")
	e.Code = ErrCodeInvalidCredentials
	return e
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "Access denied"
	}
	return newError(KindForbidden, message)
}

// Storage wraps a transaction, commit or connection failure.
func Storage(message string, err error) *Error {
	e := newError(KindStorage, message)
	e.Err = err
	return e
}

func Internal(message string, err error) *Error {
	e := newError(KindInternal, message)
	e.Err = err
	return e
}

// From converts any error into an *Error. Untyped errors become internal errors.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Detail  string      `json:"detail,omitempty"`
	Type    string      `json:"type,omitempty"`
}

// Response shapes err for the client. Internal and storage failures are
// reduced to a generic message unless debug is set.
func Response(err error, debug bool) (int, APIError) {
	appErr := From(err)
	status := appErr.Kind.Status()

	body := APIError{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}

	if status >= http.StatusInternalServerError {
		if !debug {
			return status, APIError{Code: appErr.Code, Message: "Internal server error"}
		}
		body.Detail = appErr.Error()
		body.Type = appErr.Kind.String()
	}

	return status, body
}
