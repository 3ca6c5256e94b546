package provider

import (
	"testing"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_IsSupported(t *testing.T) {
	r := NewRegistry("https://example.com", "ops@example.com", "secret", newTestLogger(t))

	assert.True(t, r.IsSupported("dhruva"))
	assert.True(t, r.IsSupported("Dhruva"))
	assert.True(t, r.IsSupported("DHRUVA"))
	assert.False(t, r.IsSupported("leafspace"))
	assert.False(t, r.IsSupported("isro"))
	assert.False(t, r.IsSupported(""))
}

func TestRegistry_Resolve_SharesClient(t *testing.T) {
	r := NewRegistry("https://example.com", "ops@example.com", "secret", newTestLogger(t))

	first, err := r.Resolve("dhruva")
	require.NoError(t, err)

	second, err := r.Resolve("Dhruva")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "dhruva", first.ProviderType())
}

func TestRegistry_Resolve_Unsupported(t *testing.T) {
	r := NewRegistry("https://example.com", "ops@example.com", "secret", newTestLogger(t))

	_, err := r.Resolve("leafspace")

	assert.ErrorIs(t, err, domain.ErrProviderNotSupported)
}
