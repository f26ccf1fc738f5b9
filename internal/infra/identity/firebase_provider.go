// Package identity provides IdentityProvider implementations backed by
// Firebase Authentication or an in-process account table.
package identity

import (
	"context"

	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/service"
	"displaygram/internal/errors"

	"firebase.google.com/go/v4/auth"
)

// firebaseProvider implements IdentityProvider using Firebase Authentication.
type firebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider creates an identity provider on top of a Firebase Auth client.
func NewFirebaseProvider(client *auth.Client) service.IdentityProvider {
	return &firebaseProvider{client: client}
}

func toAccount(record *auth.UserRecord) *entity.Account {
	account := &entity.Account{
		EmailVerified: record.EmailVerified,
		Disabled:      record.Disabled,
	}
	if record.UserInfo != nil {
		account.UID = record.UID
		account.Email = record.Email
	}

	return account
}

func (p *firebaseProvider) GetUserByEmail(ctx context.Context, email string) (*entity.Account, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "firebase get user by email")
	}

	return toAccount(record), nil
}

func (p *firebaseProvider) CreateUser(ctx context.Context, account *entity.AccountToCreate) (*entity.Account, error) {
	params := (&auth.UserToCreate{}).
		Email(account.Email).
		EmailVerified(false).
		Disabled(false)
	if account.Password != "" {
		params = params.Password(account.Password)
	}
	if account.DisplayName != "" {
		params = params.DisplayName(account.DisplayName)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, service.ErrAccountExists
		}

		return nil, errors.Wrap(err, "firebase create user")
	}

	return toAccount(record), nil
}

func (p *firebaseProvider) SetCustomClaims(ctx context.Context, uid string, claims entity.AccountClaims) error {
	if err := p.client.SetCustomUserClaims(ctx, uid, claims.ToMap()); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrAccountNotFound
		}

		return errors.Wrap(err, "firebase set custom claims")
	}

	return nil
}

func (p *firebaseProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.EmailVerificationLink(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "firebase email verification link")
	}

	return link, nil
}

func (p *firebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.IdentityToken, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidIDToken, "%v", err)
	}

	email, _ := token.Claims["email"].(string)

	return &entity.IdentityToken{
		UID:    token.UID,
		Email:  email,
		Claims: token.Claims,
	}, nil
}
