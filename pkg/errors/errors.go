package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Rule errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
)

// SarlacError represents a structured error with code and details
type SarlacError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SarlacError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SarlacError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SarlacError) Is(target error) bool {
	var targetErr *SarlacError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SarlacError with the given code and message
func New(code ErrorCode, message string) *SarlacError {
	return &SarlacError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SarlacError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SarlacError {
	return &SarlacError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SarlacError
func Wrap(err error, code ErrorCode, message string) *SarlacError {
	if err == nil {
		return nil
	}
	return &SarlacError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SarlacError {
	if err == nil {
		return nil
	}
	return &SarlacError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SarlacError) WithDetail(key string, value interface{}) *SarlacError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sarlacErr *SarlacError
	if errors.As(err, &sarlacErr) {
		return sarlacErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SarlacError
func GetErrorCode(err error) ErrorCode {
	var sarlacErr *SarlacError
	if errors.As(err, &sarlacErr) {
		return sarlacErr.Code
	}
	return ErrUnknown
}
