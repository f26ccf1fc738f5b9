package auth

import (
	"testing"
	"time"

	"displaygram/config"
	"displaygram/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(key string, ttl time.Duration) *config.Config {
	return &config.Config{
		Identity: &config.IdentityConfig{
			DevSigningKey: key,
			DevTokenTTL:   ttl,
		},
	}
}

func TestJWTService_GenerateAndValidateIDToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_signing_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims := map[string]any{"role": "admin", "companyId": "c1"}
	token, err := jwtService.GenerateIDToken("uid-1", "a@example.com", claims)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwtService.ValidateIDToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", parsed.Subject)
	assert.Equal(t, "a@example.com", parsed.Email)
	assert.Equal(t, "admin", parsed.Claims["role"])
	assert.Equal(t, "c1", parsed.Claims["companyId"])
	assert.Equal(t, time.Hour, jwtService.TokenTTL())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_signing_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.ValidateIDToken("clearly-not-a-jwt-token-format")
	require.ErrorIs(t, err, service.ErrInvalidIDToken)
	assert.Nil(t, claims)
}

func TestJWTService_WrongKey(t *testing.T) {
	signer, err := NewJWTService(newTestConfig("first_signing_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("second_signing_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := signer.GenerateIDToken("uid-1", "", nil)
	require.NoError(t, err)

	_, err = verifier.ValidateIDToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidIDToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_signing_key_very_long_for_testing", time.Minute))
	require.NoError(t, err)

	js := svc.(*jwtService)
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	js.now = func() time.Time { return issued }

	token, err := js.GenerateIDToken("uid-1", "", nil)
	require.NoError(t, err)

	js.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = js.ValidateIDToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidIDToken)
}

func TestNewJWTService_RequiresSigningKey(t *testing.T) {
	_, err := NewJWTService(newTestConfig("  ", time.Hour))
	assert.Error(t, err)
}
