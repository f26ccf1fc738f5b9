package service

import (
	"context"
	"errors"

	"displaygram/internal/domain/entity"
)

var (
	// ErrAccountNotFound is returned when the provider has no account for the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when creating an account whose e-mail is taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidIDToken is returned for a malformed, expired or forged ID token.
	ErrInvalidIDToken = errors.New("invalid id token")
)

// IdentityProvider defines the interface for the external account system.
type IdentityProvider interface {
	// GetUserByEmail looks up an account by e-mail.
	GetUserByEmail(ctx context.Context, email string) (*entity.Account, error)

	// CreateUser creates a new enabled, unverified account.
	CreateUser(ctx context.Context, account *entity.AccountToCreate) (*entity.Account, error)

	// SetCustomClaims replaces the custom claims applied on the account's next sign-in.
	SetCustomClaims(ctx context.Context, uid string, claims entity.AccountClaims) error

	// EmailVerificationLink generates a link that verifies the account's e-mail.
	EmailVerificationLink(ctx context.Context, email string) (string, error)

	// VerifyIDToken checks a signed-in caller's ID token.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.IdentityToken, error)
}
