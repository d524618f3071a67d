// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSuadaAPIError(t *testing.T) {
	err := NewSuadaAPIError(401, "invalid key")
	assert.Equal(t, ErrCodeSuadaAPIError, err.Code)
	assert.Equal(t, "invalid key", err.Message)
	assert.Equal(t, 401, err.StatusCode)
	assert.False(t, err.Retryable)
}

func TestNewSuadaAPIError_GenericMessage(t *testing.T) {
	err := NewSuadaAPIError(503, "")
	assert.Equal(t, "Failed to communicate with Suada API", err.Message)
	assert.True(t, err.Retryable)
}

func TestNewTransportError(t *testing.T) {
	err := NewTransportError(fmt.Errorf("connection refused"))
	assert.Equal(t, ErrCodeSuadaUnreachable, err.Code)
	assert.Equal(t, "connection refused", err.Details)
	assert.True(t, err.Retryable)
}

func TestClassificationHelpers(t *testing.T) {
	cfgErr := NewConfigurationError("suada.api_key is empty")
	assert.True(t, IsConfiguration(cfgErr))
	assert.Equal(t, ErrCodeConfigurationMissing, CodeOf(cfgErr))

	valErr := NewValidationError("query is required")
	assert.False(t, IsConfiguration(valErr))
	assert.Equal(t, "query is required", MessageOf(valErr))

	plain := fmt.Errorf("boom")
	assert.Equal(t, ErrorCode(""), CodeOf(plain))
	assert.Equal(t, "boom", MessageOf(plain))
}

func TestStandardError_WrappedUnwrapping(t *testing.T) {
	inner := NewValidationError("query is required")
	wrapped := fmt.Errorf("handler: %w", inner)

	assert.Equal(t, ErrCodeValidationFailed, CodeOf(wrapped))
	assert.Equal(t, "query is required", MessageOf(wrapped))
}
