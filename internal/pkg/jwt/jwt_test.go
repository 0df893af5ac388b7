package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	service := NewJWTService("test-secret", "1h")

	tokenString, expiresAt, err := service.GenerateAccessToken("user-1", "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := service.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	service := NewJWTService("test-secret", "not-a-duration")

	_, _, err := service.GenerateAccessToken("user-1", "admin@example.com")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	service := NewJWTService("test-secret", "1h")

	tokenString, _, err := service.GenerateAccessToken("user-1", "admin@example.com")
	require.NoError(t, err)

	assert.False(t, service.IsTokenRevoked(tokenString))
	service.RevokeToken(tokenString)
	assert.True(t, service.IsTokenRevoked(tokenString))
	assert.False(t, service.IsTokenRevoked("other-token"))
}
