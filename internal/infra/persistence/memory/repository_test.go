package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestShareableResourceRepository_FoldsLegacyTokens(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewShareableResourceRepository(store)

	legacyExpiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newExpiry := legacyExpiry.Add(48 * time.Hour)

	require.NoError(t, store.Put(ctx, constants.CollectionPosts, "p1", map[string]any{
		"caption": "aisle 4",
		"ownerId": "u1",
		"token": map[string]any{
			"sharedToken": "legacy",
			"tokenExpiry": legacyExpiry,
		},
		"tokens": []any{
			map[string]any{"token": "fresh", "expiry": newExpiry},
		},
	}))

	post, err := repo.FindByID(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)

	require.Len(t, post.Tokens, 2)
	assert.Equal(t, "legacy", post.Tokens[0].Token)
	assert.True(t, legacyExpiry.Equal(post.Tokens[0].Expiry))
	assert.Equal(t, "fresh", post.Tokens[1].Token)
	assert.Equal(t, "u1", post.OwnerID)
	assert.Equal(t, "aisle 4", post.Attributes["caption"])
	assert.NotContains(t, post.Attributes, "tokens")
	assert.NotContains(t, post.Attributes, "token")
}

func TestShareableResourceRepository_CollectionLegacyToken(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewShareableResourceRepository(store)

	expiry := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, constants.CollectionCollections, "c1", map[string]any{
		"ownerId":                   "u1",
		"shareToken":                "legacy",
		"tokenExpiry":               expiry.UnixMilli(),
		"sharedWith":                []any{"u2", "u3"},
		"isShareableOutsideCompany": true,
	}))

	collection, err := repo.FindByID(ctx, entity.ResourceKindCollection, "c1")
	require.NoError(t, err)

	require.Len(t, collection.Tokens, 1)
	assert.Equal(t, "legacy", collection.Tokens[0].Token)
	assert.True(t, expiry.Equal(collection.Tokens[0].Expiry))
	assert.Equal(t, []string{"u2", "u3"}, collection.SharedWith)
	assert.True(t, collection.ShareableOutsideCompany)
}

func TestShareableResourceRepository_ReplaceTokens(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewShareableResourceRepository(store)

	require.NoError(t, store.Put(ctx, constants.CollectionPosts, "p1", map[string]any{"caption": "x"}))

	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.ReplaceTokens(ctx, entity.ResourceKindPost, "p1", entity.ShareTokens{
		{Token: "a", Expiry: expiry},
		{Token: "b", Expiry: expiry.Add(time.Hour)},
	}))

	post, err := repo.FindByID(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)
	require.Len(t, post.Tokens, 2)
	assert.Equal(t, "a", post.Tokens[0].Token)
	assert.Equal(t, "b", post.Tokens[1].Token)
	assert.Equal(t, "x", post.Attributes["caption"])
}

func TestShareableResourceRepository_ReplaceTokensClearsLegacyFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewShareableResourceRepository(store)

	expiry := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, constants.CollectionCollections, "c1", map[string]any{
		"ownerId":     "u1",
		"shareToken":  "legacy",
		"tokenExpiry": expiry,
	}))

	collection, err := repo.FindByID(ctx, entity.ResourceKindCollection, "c1")
	require.NoError(t, err)

	tokens := append(collection.Tokens, entity.ShareToken{Token: "fresh", Expiry: expiry.Add(time.Hour)})
	require.NoError(t, repo.ReplaceTokens(ctx, entity.ResourceKindCollection, "c1", tokens))

	collection, err = repo.FindByID(ctx, entity.ResourceKindCollection, "c1")
	require.NoError(t, err)
	require.Len(t, collection.Tokens, 2)
	assert.Equal(t, "legacy", collection.Tokens[0].Token)
	assert.Equal(t, "fresh", collection.Tokens[1].Token)
}

func TestShareableResourceRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewShareableResourceRepository(newTestStore(t))

	_, err := repo.FindByID(ctx, entity.ResourceKindPost, "missing")
	assert.ErrorIs(t, err, repository.ErrResourceNotFound)

	err = repo.ReplaceTokens(ctx, entity.ResourceKindCollection, "missing", nil)
	assert.ErrorIs(t, err, repository.ErrResourceNotFound)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tm := NewTransactionManager(store)

	var companyID string
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		company := entity.NewProvisionalCompany("Acme Co", entity.CompanyTypeDistributor, entity.Contact{})
		if err := f.NewCompanyRepository().Create(ctx, company); err != nil {
			return err
		}
		companyID = company.ID

		return f.NewCompanyReservationRepository().Create(ctx, &entity.CompanyReservation{
			NormalizedName: company.NormalizedName,
			CompanyID:      company.ID,
		})
	})
	require.NoError(t, err)

	reservation, err := NewCompanyReservationRepository(store).Find(ctx, "acme co")
	require.NoError(t, err)
	assert.Equal(t, companyID, reservation.CompanyID)

	company, err := NewCompanyRepository(store).FindByNormalizedName(ctx, "acme co")
	require.NoError(t, err)
	assert.Equal(t, companyID, company.ID)
	assert.Equal(t, "Acme Co", company.CompanyName)
	assert.Equal(t, 5, company.Limits.MaxUsers)
	assert.False(t, company.CreatedAt.IsZero())
}

func TestTransactionManager_DiscardsWritesOnError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tm := NewTransactionManager(store)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		company := entity.NewProvisionalCompany("Acme Co", entity.CompanyTypeSupplier, entity.Contact{})
		if err := f.NewCompanyRepository().Create(ctx, company); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := store.Count(ctx, constants.CollectionCompanies)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCompanyReservationRepository_CreateTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewCompanyReservationRepository(newTestStore(t))

	reservation := &entity.CompanyReservation{NormalizedName: "acme co", CompanyID: "c1"}
	require.NoError(t, repo.Create(ctx, reservation))

	err := repo.Create(ctx, &entity.CompanyReservation{NormalizedName: "acme co", CompanyID: "c2"})
	assert.ErrorIs(t, err, repository.ErrCompanyReserved)

	_, err = repo.Find(ctx, "other")
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}

func TestTransactionManager_SerialisesReservations(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tm := NewTransactionManager(store)

	const attempts = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		reserved int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				_, err := f.NewCompanyReservationRepository().Find(ctx, "acme co")
				if err == nil {
					return repository.ErrCompanyReserved
				}
				if !errors.Is(err, repository.ErrReservationNotFound) {
					return err
				}

				return f.NewCompanyReservationRepository().Create(ctx, &entity.CompanyReservation{
					NormalizedName: "acme co",
					CompanyID:      "c1",
				})
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, repository.ErrCompanyReserved):
				reserved++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, attempts-1, reserved)
}

func TestUserRepository_UpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewUserRepository(store)

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }
	require.NoError(t, repo.Upsert(ctx, &entity.UserProfile{
		UID:       "u1",
		Email:     "a@example.com",
		CompanyID: "c1",
		Role:      entity.RolePending,
	}))

	store.now = func() time.Time { return first.Add(time.Hour) }
	require.NoError(t, repo.Upsert(ctx, &entity.UserProfile{
		UID:       "u1",
		Email:     "a@example.com",
		CompanyID: "c2",
		Role:      entity.RoleAdmin,
	}))

	user, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "c2", user.CompanyID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, first.Equal(user.CreatedAt))
	assert.True(t, first.Add(time.Hour).Equal(user.UpdatedAt))

	admins, err := repo.FindByCompanyAndRole(ctx, "c2", entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "u1", admins[0].UID)

	_, err = repo.FindByID(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestPendingUserRepository_FindPendingByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewPendingUserRepository(newTestStore(t))

	_, err := repo.FindPendingByEmail(ctx, "a@example.com")
	require.ErrorIs(t, err, repository.ErrPendingUserNotFound)

	pending := &entity.PendingUser{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "a@example.com",
		CompanyName: "Acme",
		Status:      entity.RequestStatusPending,
		Source:      entity.SignupSourceRequest,
		Meta:        entity.RequestMeta{IP: "10.0.0.1"},
	}
	require.NoError(t, repo.Create(ctx, pending))
	require.NotEmpty(t, pending.ID)

	found, err := repo.FindPendingByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, pending.ID, found.ID)
	assert.Equal(t, "10.0.0.1", found.Meta.IP)
	assert.Empty(t, found.Phone)
}

func TestAPIKeyRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAPIKeyRepository(newTestStore(t))

	keys, err := repo.FindByCompany(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, keys)

	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, "c1", entity.ExternalAPIKeys{
		{Name: "galloApiKey", Env: entity.APIKeyEnvProd, Key: "secret-1234", LastFour: "1234", CreatedAt: now, UpdatedAt: now},
	}))

	keys, err = repo.FindByCompany(ctx, "c1")
	require.NoError(t, err)
	key, ok := keys.Find("galloApiKey", entity.APIKeyEnvProd)
	require.True(t, ok)
	assert.Equal(t, "secret-1234", key.Key)
	assert.True(t, now.Equal(key.UpdatedAt))
}

func TestStore_Seed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	count, err := store.Seed(ctx, map[string]any{
		"posts": map[string]any{
			"p1": map[string]any{"ownerId": "u1"},
			"p2": map[string]any{"ownerId": "u2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = store.Seed(ctx, map[string]any{"widgets": map[string]any{}})
	assert.Error(t, err)
}

func TestCompanyReservationRepository_AwkwardNames(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCompanyReservationRepository(store)

	names := []string{"a/b foods", ".", "..", "__x__", "acme/../co"}
	for i, name := range names {
		require.NoError(t, repo.Create(ctx, &entity.CompanyReservation{NormalizedName: name, CompanyID: fmt.Sprintf("c%d", i)}), name)
	}

	for i, name := range names {
		reservation, err := repo.Find(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, name, reservation.NormalizedName)
		assert.Equal(t, fmt.Sprintf("c%d", i), reservation.CompanyID)
	}

	err := repo.Create(ctx, &entity.CompanyReservation{NormalizedName: "a/b foods", CompanyID: "late"})
	require.ErrorIs(t, err, repository.ErrCompanyReserved)

	_, err = repo.Find(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)

	count, err := store.Count(ctx, constants.CollectionCompanyNames)
	require.NoError(t, err)
	assert.Equal(t, len(names), count)
}

func TestShareableResourceRepository_IDsAreNotTrimmed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewShareableResourceRepository(store)

	require.NoError(t, store.Put(ctx, constants.CollectionPosts, "p1", map[string]any{"ownerId": "u1"}))

	_, err := repo.FindByID(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)

	for _, id := range []string{"p1 ", " p1", "", ".", "..", "__p1__", "posts/p1"} {
		_, err := repo.FindByID(ctx, entity.ResourceKindPost, id)
		assert.ErrorIs(t, err, repository.ErrResourceNotFound, "id %q", id)

		err = repo.ReplaceTokens(ctx, entity.ResourceKindPost, id, nil)
		assert.ErrorIs(t, err, repository.ErrResourceNotFound, "id %q", id)
	}
}
