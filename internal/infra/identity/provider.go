package identity

import (
	"log/slog"

	"displaygram/config"
	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/service"
	"displaygram/internal/errors"
	"displaygram/internal/infra/auth"
	firebaseinfra "displaygram/internal/infra/firebase"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseinfra.Clients
}

// NewIdentityProvider creates an IdentityProvider based on configuration
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		if params.Firebase.Auth == nil {
			return nil, errors.New("firebase auth client is not initialised")
		}
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseProvider(params.Firebase.Auth), nil

	case constants.IdentityProviderMemory, "":
		tokens, err := auth.NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}
		params.Logger.Warn("Using in-memory identity provider, accounts are lost on restart")

		return NewMemoryProvider(tokens, auth.NewBcryptHasher(), params.Config.Share.BaseURL), nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
