package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStaticDeviceIDProvider tests the StaticDeviceIDProvider type.
func TestStaticDeviceIDProvider(t *testing.T) {
	t.Parallel()

	provider := NewStaticDeviceIDProvider("device-123")

	assert.Equal(t, "device-123", provider.GetDeviceID())
	assert.Equal(t, "device-123", provider.GetDeviceID())
}

// TestRandomDeviceIDProvider tests the RandomDeviceIDProvider type.
func TestRandomDeviceIDProvider(t *testing.T) {
	t.Parallel()

	provider := NewRandomDeviceIDProvider()

	first := provider.GetDeviceID()
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	// The identifier is stable for the lifetime of the provider.
	assert.Equal(t, first, provider.GetDeviceID())

	other := NewRandomDeviceIDProvider()
	assert.NotEqual(t, first, other.GetDeviceID())
}
