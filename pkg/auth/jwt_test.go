package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenExpiryIsThirtyDays(t *testing.T) {
	token, err := GenerateToken(1, "user")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	expected := time.Now().Add(TokenTTL)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsTampered(t *testing.T) {
	token, err := GenerateToken(7, "user")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
