package usecase

import (
	"context"

	"displaygram/internal/domain/entity"
)

// AccountExistence reports whether an account is registered for an e-mail.
type AccountExistence struct {
	Exists bool
	UID    string
}

// AccountUsecase defines the interface for account lookups
type AccountUsecase interface {
	// CheckUserExists looks up the account registered for email.
	CheckUserExists(ctx context.Context, email string) (*AccountExistence, error)

	// Authenticate verifies a bearer ID token.
	Authenticate(ctx context.Context, idToken string) (*entity.IdentityToken, error)
}
