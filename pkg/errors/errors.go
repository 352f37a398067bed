// Package errors provides the structured error type used across iconlib.
//
// Every error that crosses a package boundary carries an ErrorCode so tests
// and the CLI can react to the category of failure without string matching.
// Details hold the data a diagnostic needs, most commonly the failing path.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Artifact errors
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrHintParse     ErrorCode = "HINT_PARSE"
)

// IconlibError represents a structured error with code and details
type IconlibError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IconlibError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IconlibError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an IconlibError with the same code
func (e *IconlibError) Is(target error) bool {
	var targetErr *IconlibError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IconlibError with the given code and message
func New(code ErrorCode, message string) *IconlibError {
	return &IconlibError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IconlibError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IconlibError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *IconlibError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IconlibError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *IconlibError) WithDetail(key string, value interface{}) *IconlibError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *IconlibError) WithDetails(details map[string]interface{}) *IconlibError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var iconErr *IconlibError
	if errors.As(err, &iconErr) {
		return iconErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an IconlibError
func GetErrorCode(err error) ErrorCode {
	var iconErr *IconlibError
	if errors.As(err, &iconErr) {
		return iconErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an IconlibError
func GetErrorDetails(err error) map[string]interface{} {
	var iconErr *IconlibError
	if errors.As(err, &iconErr) {
		return iconErr.Details
	}
	return nil
}
