package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_Generate(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 7*24*time.Hour)

	token, err := issuer.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Decode(token)
	require.NoError(t, err)

	userID, err := GetUserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenIssuer_ExpiryClaim(t *testing.T) {
	ttl := 7 * 24 * time.Hour
	issuer := NewTokenIssuer([]byte("test-secret"), ttl)

	token, err := issuer.Generate("user-123")
	require.NoError(t, err)

	claims, err := issuer.Decode(token)
	require.NoError(t, err)

	exp, ok := claims["exp"].(time.Time)
	require.True(t, ok, "exp claim should decode as time.Time")
	assert.WithinDuration(t, time.Now().Add(ttl), exp, time.Minute)
}

func TestGetUserIDFromClaims_Missing(t *testing.T) {
	_, err := GetUserIDFromClaims(map[string]interface{}{})
	assert.Error(t, err)
}
