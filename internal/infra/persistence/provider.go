// Package persistence selects the document store driver and provides its repositories.
package persistence

import (
	"context"
	"log/slog"

	"displaygram/config"
	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	firebaseinfra "displaygram/internal/infra/firebase"
	"displaygram/internal/infra/persistence/firestore"
	"displaygram/internal/infra/persistence/memory"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseinfra.Clients
}

// Repositories is the set of repositories provided to the graph.
type Repositories struct {
	fx.Out

	TxManager      repository.TransactionManager
	Resources      repository.ShareableResourceRepository
	Companies      repository.CompanyRepository
	AccessRequests repository.AccessRequestRepository
	PendingUsers   repository.PendingUserRepository
	Users          repository.UserRepository
	APIKeys        repository.APIKeyRepository
	Mail           repository.MailRepository
}

// New builds the repositories of the configured driver.
func New(params Params) (Repositories, error) {
	driver := params.Config.Persistence.Driver
	switch driver {
	case constants.PersistenceDriverFirestore:
		client := params.Firebase.Firestore
		if client == nil {
			return Repositories{}, errors.New("firestore client is not initialised")
		}
		params.Logger.Info("Using Firestore persistence")

		return Repositories{
			TxManager:      firestore.NewTransactionManager(client),
			Resources:      firestore.NewShareableResourceRepository(client),
			Companies:      firestore.NewCompanyRepository(client),
			AccessRequests: firestore.NewAccessRequestRepository(client),
			PendingUsers:   firestore.NewPendingUserRepository(client),
			Users:          firestore.NewUserRepository(client),
			APIKeys:        firestore.NewAPIKeyRepository(client),
			Mail:           firestore.NewMailRepository(client),
		}, nil

	case constants.PersistenceDriverMemory, "":
		store, err := memory.NewStore()
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Warn("Using in-memory persistence, data is lost on restart")

		if seedPath := params.Config.Persistence.SeedPath; seedPath != "" {
			count, err := store.SeedFromFile(context.Background(), seedPath)
			if err != nil {
				_ = store.Close()

				return Repositories{}, err
			}
			params.Logger.Info("Seeded in-memory store",
				slog.String("path", seedPath),
				slog.Int("documents", count),
			)
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})

		return NewMemoryRepositories(store), nil

	default:
		return Repositories{}, errors.Errorf("unknown persistence driver: %s", driver)
	}
}

// NewMemoryRepositories wires every repository to one in-memory store.
func NewMemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		TxManager:      memory.NewTransactionManager(store),
		Resources:      memory.NewShareableResourceRepository(store),
		Companies:      memory.NewCompanyRepository(store),
		AccessRequests: memory.NewAccessRequestRepository(store),
		PendingUsers:   memory.NewPendingUserRepository(store),
		Users:          memory.NewUserRepository(store),
		APIKeys:        memory.NewAPIKeyRepository(store),
		Mail:           memory.NewMailRepository(store),
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
