package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "displaygram/internal/delivery/context"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/domain/service"
	"displaygram/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	identity service.IdentityProvider
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Identity service.IdentityProvider
	Logger   *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		identity: params.Identity,
		logger:   params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckUserExists looks up the account registered for email.
func (srv *accountService) CheckUserExists(ctx context.Context, email string) (*usecase.AccountExistence, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, domainerrors.ErrBadInput.WithDetails("A valid email is required.")
	}

	account, err := srv.identity.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return &usecase.AccountExistence{Exists: false}, nil
		}
		srv.log(ctx).Error("Account lookup failed", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrAuthLookupFailed
	}

	return &usecase.AccountExistence{Exists: true, UID: account.UID}, nil
}

// Authenticate verifies a bearer ID token.
func (srv *accountService) Authenticate(ctx context.Context, idToken string) (*entity.IdentityToken, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	identity, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Debug("ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidIDToken
	}

	return identity, nil
}
