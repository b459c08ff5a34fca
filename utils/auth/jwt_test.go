package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
		Issuer: "college-compass-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := newTestManager(time.Hour)

	token, jti, err := m.GenerateAccessToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, "college-compass-test", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, _, err := m.GenerateAccessToken("admin")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	token, _, err := m.GenerateAccessToken("admin")
	require.NoError(t, err)

	other := NewJWTManager(JWTConfig{Secret: "different", Expiry: time.Hour, Issuer: "x"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := newTestManager(time.Hour)

	_, err := m.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJTIsAreUnique(t *testing.T) {
	m := newTestManager(time.Hour)

	_, first, err := m.GenerateAccessToken("admin")
	require.NoError(t, err)
	_, second, err := m.GenerateAccessToken("admin")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGetJTIAndExpiry(t *testing.T) {
	m := newTestManager(time.Hour)

	token, jti, err := m.GenerateAccessToken("admin")
	require.NoError(t, err)

	got, err := m.GetJTI(token)
	require.NoError(t, err)
	assert.Equal(t, jti, got)

	expiry, err := m.GetTokenExpiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)
}
