package persistence

import (
	"io"
	"log/slog"
	"testing"

	"displaygram/config"
	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/repository"
	firebaseinfra "displaygram/internal/infra/firebase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule_MemoryDriver(t *testing.T) {
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Driver: constants.PersistenceDriverMemory}}

	var (
		txManager      repository.TransactionManager
		resources      repository.ShareableResourceRepository
		companies      repository.CompanyRepository
		accessRequests repository.AccessRequestRepository
		pendingUsers   repository.PendingUserRepository
		users          repository.UserRepository
		apiKeys        repository.APIKeyRepository
		mail           repository.MailRepository
	)

	app := fxtest.New(t,
		fx.Supply(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), &firebaseinfra.Clients{}),
		Module,
		fx.Populate(&txManager, &resources, &companies, &accessRequests, &pendingUsers, &users, &apiKeys, &mail),
	)
	app.RequireStart()
	defer app.RequireStop()

	for name, repo := range map[string]any{
		"txManager":      txManager,
		"resources":      resources,
		"companies":      companies,
		"accessRequests": accessRequests,
		"pendingUsers":   pendingUsers,
		"users":          users,
		"apiKeys":        apiKeys,
		"mail":           mail,
	} {
		assert.NotNil(t, repo, name)
	}
}

func TestNew_FirestoreWithoutClient(t *testing.T) {
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Driver: constants.PersistenceDriverFirestore}}

	_, err := New(Params{
		Lc:       fxtest.NewLifecycle(t),
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Firebase: &firebaseinfra.Clients{},
	})
	assert.Error(t, err)
}
