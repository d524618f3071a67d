// Package errors provides standardized error handling for the Suada MCP server.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Startup errors. These terminate the process before any tool is served.
	ErrCodeConfigurationMissing ErrorCode = "CONFIGURATION_MISSING"

	// Per-call errors. These become tool-level error results, never crashes.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeSuadaAPIError    ErrorCode = "SUADA_API_ERROR"
	ErrCodeSuadaUnreachable ErrorCode = "SUADA_UNREACHABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"statusCode,omitempty"`
	Retryable  bool      `json:"retryable"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigurationError creates a fatal startup error for missing or invalid
// configuration. No valid operation is possible once this is raised.
func NewConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationMissing,
		Message:   "Suada API key is required. Provide it as an argument or set SUADA_API_KEY environment variable.",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError creates a non-retryable per-call error for a tool call
// missing a required parameter.
func NewValidationError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSuadaAPIError creates an error for a non-2xx response from the Suada API.
// The message is the server-supplied one when present, generic otherwise.
func NewSuadaAPIError(statusCode int, message string) *StandardError {
	if message == "" {
		message = "Failed to communicate with Suada API"
	}
	return &StandardError{
		Code:       ErrCodeSuadaAPIError,
		Message:    message,
		Details:    fmt.Sprintf("status: %d", statusCode),
		StatusCode: statusCode,
		Retryable:  statusCode >= 500,
		Timestamp:  time.Now().UTC(),
	}
}

// NewTransportError creates an error for a network failure where no response
// was received at all.
func NewTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSuadaUnreachable,
		Message:   "Failed to communicate with Suada API",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// AsStandard unwraps err into a *StandardError, or nil when it is not one.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return nil
}

// CodeOf returns the error code of err, or empty when err is not standardized.
func CodeOf(err error) ErrorCode {
	if stdErr := AsStandard(err); stdErr != nil {
		return stdErr.Code
	}
	return ""
}

// MessageOf returns the human-readable message to surface at the tool
// boundary: the standardized message when available, err.Error() otherwise.
func MessageOf(err error) string {
	if stdErr := AsStandard(err); stdErr != nil {
		return stdErr.Message
	}
	return err.Error()
}

// IsConfiguration reports whether err is a fatal configuration error.
func IsConfiguration(err error) bool {
	return CodeOf(err) == ErrCodeConfigurationMissing
}
