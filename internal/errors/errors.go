// Package errors provides error handling utilities.
//
// The engine distinguishes exactly two externally meaningful kinds:
// validation errors (caller-supplied inputs violated an invariant) and
// configuration errors (the pricing tables are internally inconsistent).
// Transport layers map the former to client faults and the latter to
// server faults; the engine itself knows nothing about HTTP.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates caller input violated an invariant
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeConfig indicates an inconsistent or unusable pricing configuration
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error in a glue layer
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Validation creates a validation error for one offending field.
// The field name is recorded in the error context so transport layers
// can surface it without parsing the message.
func Validation(field, reason string) *Error {
	return Newf(TypeValidation, "%s: %s", field, reason).WithContext("field", field)
}

// Validationf creates a formatted validation error for one offending field
func Validationf(field, format string, args ...interface{}) *Error {
	return Validation(field, fmt.Sprintf(format, args...))
}

// Config creates a configuration error
func Config(reason string) *Error {
	return New(TypeConfig, reason)
}

// Configf creates a formatted configuration error
func Configf(format string, args ...interface{}) *Error {
	return Newf(TypeConfig, format, args...)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
