package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, 720*time.Hour)

	token, expiresIn, err := svc.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), expiresIn)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc := NewService("secret-a", 15*time.Minute, 720*time.Hour)
	other := NewService("secret-b", 15*time.Minute, 720*time.Hour)

	token, _, err := svc.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute, 720*time.Hour)

	token, _, err := svc.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, 720*time.Hour)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, 720*time.Hour)

	token1, expires1, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	token2, _, err := svc.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, token1)
	assert.NotEqual(t, token1, token2)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), expires1, time.Minute)
}
