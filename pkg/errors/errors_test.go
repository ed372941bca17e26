package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_MessageAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewTransportError("registry request failed", cause)

	assert.Contains(t, err.Error(), "TRANSPORT")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsType(err, ErrorTypeTransport))
	assert.False(t, IsType(err, ErrorTypeDecode))
}

func TestUpstreamError_CarriesEnvelopeFields(t *testing.T) {
	err := NewUpstreamError(4, "invalid province", "use a code between 01 and 16")

	assert.Equal(t, 4, err.Code)
	assert.Contains(t, err.Error(), "invalid province")
	assert.Contains(t, err.Error(), "use a code between 01 and 16")
	assert.True(t, IsUpstream(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("queue missing")))
	assert.False(t, IsNotFound(NewValidationError("bad province")))
	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
}
