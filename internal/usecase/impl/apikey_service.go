package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "displaygram/internal/delivery/context"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/domain/repository"
	"displaygram/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// apiKeyService implements the APIKeyUsecase interface.
type apiKeyService struct {
	txManager repository.TransactionManager
	users     repository.UserRepository
	apiKeys   repository.APIKeyRepository
	now       func() time.Time
	logger    *slog.Logger
}

// APIKeyServiceParams holds dependencies for APIKeyService, injected by Fx.
type APIKeyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Users     repository.UserRepository
	APIKeys   repository.APIKeyRepository
	Logger    *slog.Logger
}

// NewAPIKeyService creates a new API key service instance
func NewAPIKeyService(params APIKeyServiceParams) usecase.APIKeyUsecase {
	return &apiKeyService{
		txManager: params.TxManager,
		users:     params.Users,
		apiKeys:   params.APIKeys,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    params.Logger,
	}
}

func (srv *apiKeyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetKeyStatus reports the stored keys of an integration without revealing them.
func (srv *apiKeyService) GetKeyStatus(ctx context.Context, uid, name string) (*usecase.APIKeyStatusOutput, error) {
	profile, err := srv.companyProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	keys, err := srv.apiKeys.FindByCompany(ctx, profile.CompanyID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load api keys")
	}

	name = keyName(name)

	return &usecase.APIKeyStatusOutput{
		Prod: keyStatus(keys, name, entity.APIKeyEnvProd),
		Dev:  keyStatus(keys, name, entity.APIKeyEnvDev),
	}, nil
}

// StoreKey replaces the (name, env) entry of the caller's company.
// Concurrent stores never drop each other's entries.
func (srv *apiKeyService) StoreKey(ctx context.Context, uid string, input *usecase.StoreAPIKeyInput) (string, error) {
	profile, err := srv.adminProfile(ctx, uid)
	if err != nil {
		return "", err
	}
	if !input.Env.IsValid() {
		return "", domainerrors.ErrInvalidEnv
	}
	if strings.TrimSpace(input.Key) == "" {
		return "", domainerrors.ErrBadInput.WithDetails("Missing key")
	}

	name := keyName(input.Name)
	var entry entity.ExternalAPIKey
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apiKeys := repoFactory.NewAPIKeyRepository()

		keys, err := apiKeys.FindByCompany(ctx, profile.CompanyID)
		if err != nil {
			return errors.Wrap(err, "failed to load api keys")
		}

		now := srv.now()
		entry = entity.ExternalAPIKey{
			Name:      name,
			Env:       input.Env,
			Key:       input.Key,
			LastFour:  entity.LastFour(input.Key),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if existing, ok := keys.Find(name, input.Env); ok && !existing.CreatedAt.IsZero() {
			entry.CreatedAt = existing.CreatedAt
		}

		return apiKeys.Save(ctx, profile.CompanyID, append(keys.Without(name, input.Env), entry))
	})
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to save api key")
	}

	srv.log(ctx).Info("External API key stored",
		slog.String("company_id", profile.CompanyID),
		slog.String("name", name),
		slog.String("env", string(input.Env)),
	)

	return entry.LastFour, nil
}

// DeleteKey removes the (name, env) entry of the caller's company.
// Deleting a key that does not exist succeeds.
func (srv *apiKeyService) DeleteKey(ctx context.Context, uid, name string, env entity.APIKeyEnv) error {
	profile, err := srv.adminProfile(ctx, uid)
	if err != nil {
		return err
	}
	if !env.IsValid() {
		return domainerrors.ErrInvalidEnv
	}

	name = keyName(name)
	var deleted bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apiKeys := repoFactory.NewAPIKeyRepository()

		keys, err := apiKeys.FindByCompany(ctx, profile.CompanyID)
		if err != nil {
			return errors.Wrap(err, "failed to load api keys")
		}
		if _, deleted = keys.Find(name, env); !deleted {
			return nil
		}

		return apiKeys.Save(ctx, profile.CompanyID, keys.Without(name, env))
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete api key")
	}
	if !deleted {
		return nil
	}

	srv.log(ctx).Info("External API key deleted",
		slog.String("company_id", profile.CompanyID),
		slog.String("name", name),
		slog.String("env", string(env)),
	)

	return nil
}

// companyProfile loads the caller's profile, which must belong to a company.
func (srv *apiKeyService) companyProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCallerProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user profile")
	}
	if !profile.HasCompany() {
		return nil, domainerrors.ErrUserHasNoCompany
	}

	return profile, nil
}

func (srv *apiKeyService) adminProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.companyProfile(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !profile.Role.IsCompanyAdmin() {
		return nil, domainerrors.ErrAdminRequired
	}

	return profile, nil
}

func keyName(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		return entity.DefaultExternalAPIName
	}

	return name
}

func keyStatus(keys entity.ExternalAPIKeys, name string, env entity.APIKeyEnv) entity.APIKeyStatus {
	key, ok := keys.Find(name, env)
	if !ok {
		return entity.APIKeyStatus{Exists: false}
	}

	status := entity.APIKeyStatus{Exists: true, LastFour: key.LastFour}
	if !key.UpdatedAt.IsZero() {
		updatedAt := key.UpdatedAt
		status.UpdatedAt = &updatedAt
	}

	return status
}
