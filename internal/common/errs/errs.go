package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to translate it, such as the
// HTTP layer choosing a status code.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation_failed"
	KindStorage      Kind = "storage_failure"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
)

// Error is a classified error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a not-found error
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Validation creates a validation error
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Validationf creates a validation error with a formatted message
func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// Unauthorized creates an authentication error
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Forbidden creates an authorization error
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Storage wraps a persistence failure
func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
