package identity

import (
	"context"
	"testing"
	"time"

	"displaygram/config"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/service"
	"displaygram/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *MemoryProvider {
	t.Helper()

	tokens, err := auth.NewJWTService(&config.Config{
		Identity: &config.IdentityConfig{DevSigningKey: "test_signing_key_very_long_for_testing", DevTokenTTL: time.Hour},
	})
	require.NoError(t, err)

	return NewMemoryProvider(tokens, auth.NewBcryptHasher(), "https://app.example.com/")
}

func TestMemoryProvider_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	_, err := p.GetUserByEmail(ctx, "a@example.com")
	require.ErrorIs(t, err, service.ErrAccountNotFound)

	created, err := p.CreateUser(ctx, &entity.AccountToCreate{Email: " A@Example.com ", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, "a@example.com", created.Email)

	found, err := p.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UID, found.UID)

	_, err = p.CreateUser(ctx, &entity.AccountToCreate{Email: "a@example.com"})
	assert.ErrorIs(t, err, service.ErrAccountExists)
}

func TestMemoryProvider_ClaimsFlowIntoIDTokens(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	created, err := p.CreateUser(ctx, &entity.AccountToCreate{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	require.NoError(t, p.SetCustomClaims(ctx, created.UID, entity.AccountClaims{Role: entity.RoleAdmin, CompanyID: "c1"}))

	idToken, err := p.SignIn("a@example.com", "secret-pass")
	require.NoError(t, err)

	verified, err := p.VerifyIDToken(ctx, idToken)
	require.NoError(t, err)
	assert.Equal(t, created.UID, verified.UID)
	assert.Equal(t, "a@example.com", verified.Email)
	assert.Equal(t, "admin", verified.Claims["role"])
	assert.Equal(t, "c1", verified.Claims["companyId"])

	_, err = p.SignIn("a@example.com", "wrong-pass")
	assert.ErrorIs(t, err, service.ErrInvalidIDToken)
}

func TestMemoryProvider_VerifyIDTokenRejectsGarbage(t *testing.T) {
	p := newTestProvider(t)

	_, err := p.VerifyIDToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, service.ErrInvalidIDToken)
}

func TestMemoryProvider_SetCustomClaimsUnknownAccount(t *testing.T) {
	p := newTestProvider(t)

	err := p.SetCustomClaims(context.Background(), "nobody", entity.AccountClaims{Role: entity.RolePending})
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestMemoryProvider_EmailVerificationLink(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	_, err := p.EmailVerificationLink(ctx, "a@example.com")
	require.ErrorIs(t, err, service.ErrAccountNotFound)

	_, err = p.CreateUser(ctx, &entity.AccountToCreate{Email: "a@example.com"})
	require.NoError(t, err)

	link, err := p.EmailVerificationLink(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Contains(t, link, "https://app.example.com/auth/action?")
	assert.Contains(t, link, "mode=verifyEmail")
}
