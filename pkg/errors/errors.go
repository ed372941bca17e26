package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeTransport indicates a connectivity failure (network, DNS, timeout)
	ErrorTypeTransport ErrorType = "TRANSPORT"

	// ErrorTypeUpstream indicates the registry explicitly rejected the request
	ErrorTypeUpstream ErrorType = "UPSTREAM"

	// ErrorTypeDecode indicates a response body did not match the expected shape
	ErrorTypeDecode ErrorType = "DECODE"

	// ErrorTypeValidation indicates invalid caller input caught before any network call
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates a resource was not found upstream
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// UpstreamError carries the registry's error envelope fields. The reason and
// solution strings usually describe a fixable input problem and are meant to
// be shown to the user largely verbatim.
type UpstreamError struct {
	Code     int
	Reason   string
	Solution string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Solution != "" {
		return fmt.Sprintf("%s: registry rejected request (code %d): %s - %s",
			ErrorTypeUpstream, e.Code, e.Reason, e.Solution)
	}
	return fmt.Sprintf("%s: registry rejected request (code %d): %s",
		ErrorTypeUpstream, e.Code, e.Reason)
}

// NewTransportError creates a new transport error
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     err,
	}
}

// NewDecodeError creates a new decode error
func NewDecodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeDecode,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewUpstreamError creates a new upstream error from the registry envelope
func NewUpstreamError(code int, reason, solution string) *UpstreamError {
	return &UpstreamError{
		Code:     code,
		Reason:   reason,
		Solution: solution,
	}
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsUpstream reports whether err is a registry rejection
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return stderrors.As(err, &upstreamErr)
}
