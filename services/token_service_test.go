package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	userID := uuid.NewString()

	token, err := ts.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims["sub"])
	assert.Equal(t, "access", claims["typ"])
}

func TestValidateExpiredToken(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Generate(uuid.NewString())
	require.NoError(t, err)

	_, err = ts.Validate(token)
	assert.Error(t, err)
}

func TestValidateTamperedToken(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Generate(uuid.NewString())
	require.NoError(t, err)

	_, err = ts.Validate(token + "x")
	assert.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	other := NewTokenService("other-secret", time.Hour)
	token, err := other.Generate(uuid.NewString())
	require.NoError(t, err)

	ts := NewTokenService("test-secret", time.Hour)
	_, err = ts.Validate(token)
	assert.Error(t, err)
}

func TestValidateWrongTokenType(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"typ": "refresh",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	ts := NewTokenService(secret, time.Hour)
	_, err = ts.Validate(token)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	_, err := ts.Validate("invalid_token")
	assert.Error(t, err)
}

func TestNewTokenServicePanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { NewTokenService("", time.Hour) })
}
