package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("64a9f31b2c8d4e0f1a2b3cde", "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64a9f31b2c8d4e0f1a2b3cde", claims.ID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("id", "user@example.com")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
