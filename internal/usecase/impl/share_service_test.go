package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"displaygram/config"
	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/domain/repository"
	"displaygram/internal/infra/persistence/memory"
	mockSvc "displaygram/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testT0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemoryStore(t *testing.T) *memory.Store {
	t.Helper()

	store, err := memory.NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

// testClock is a settable time source shared between a service and its test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type shareFixture struct {
	store     *memory.Store
	resources repository.ShareableResourceRepository
	users     repository.UserRepository
	qrcode    *mockSvc.MockQRCodeService
	clock     *testClock
	service   *shareService
}

func newShareFixture(t *testing.T) *shareFixture {
	t.Helper()

	store := newMemoryStore(t)
	f := &shareFixture{
		store:     store,
		resources: memory.NewShareableResourceRepository(store),
		users:     memory.NewUserRepository(store),
		qrcode:    mockSvc.NewMockQRCodeService(t),
		clock:     &testClock{now: testT0},
	}

	f.service = NewShareService(ShareServiceParams{
		TxManager: memory.NewTransactionManager(store),
		Resources: f.resources,
		Users:     f.users,
		QRCode:    f.qrcode,
		Config:    &config.Config{Share: &config.ShareConfig{TokenTTL: entity.DefaultShareTokenTTL}},
		Logger:    discardLogger(),
	}).(*shareService)
	f.service.now = f.clock.Now

	return f
}

func (f *shareFixture) putPost(t *testing.T, id string, data map[string]any) {
	t.Helper()
	require.NoError(t, f.store.Put(context.Background(), constants.CollectionPosts, id, data))
}

func (f *shareFixture) putCollection(t *testing.T, id string, data map[string]any) {
	t.Helper()
	require.NoError(t, f.store.Put(context.Background(), constants.CollectionCollections, id, data))
}

func (f *shareFixture) storedTokens(t *testing.T, kind entity.ResourceKind, id string) entity.ShareTokens {
	t.Helper()

	resource, err := f.resources.FindByID(context.Background(), kind, id)
	require.NoError(t, err)

	return resource.Tokens
}

func TestShareService_IssueOrReuseToken_IssuesOnceThenReuses(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	f.putPost(t, "p1", map[string]any{"caption": "endcap", "ownerId": "u1"})

	first, err := f.service.IssueOrReuseToken(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)
	assert.NotEmpty(t, first.Token)
	assert.True(t, testT0.Add(7*24*time.Hour).Equal(first.Expiry))

	f.clock.Set(testT0.Add(time.Hour))
	second, err := f.service.IssueOrReuseToken(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)
	assert.Equal(t, first.Token, second.Token)
	assert.True(t, first.Expiry.Equal(second.Expiry))

	tokens := f.storedTokens(t, entity.ResourceKindPost, "p1")
	require.Len(t, tokens, 1)
	assert.Equal(t, first.Token, tokens[0].Token)
}

func TestShareService_IssueOrReuseToken_ReturnsNewestLiveToken(t *testing.T) {
	f := newShareFixture(t)
	f.putCollection(t, "c1", map[string]any{
		"ownerId": "u1",
		"tokens": []any{
			map[string]any{"token": "older", "expiry": testT0.Add(24 * time.Hour)},
			map[string]any{"token": "newer", "expiry": testT0.Add(48 * time.Hour)},
			map[string]any{"token": "dead", "expiry": testT0.Add(-time.Hour)},
		},
	})

	token, err := f.service.IssueOrReuseToken(context.Background(), entity.ResourceKindCollection, "c1")
	require.NoError(t, err)
	assert.Equal(t, "newer", token.Token)
	assert.Len(t, f.storedTokens(t, entity.ResourceKindCollection, "c1"), 3)
}

func TestShareService_IssueOrReuseToken_PrunesExpiredOnIssue(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	f.putPost(t, "p1", map[string]any{"ownerId": "u1"})

	first, err := f.service.IssueOrReuseToken(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)

	f.clock.Set(testT0.Add(8 * 24 * time.Hour))
	second, err := f.service.IssueOrReuseToken(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	tokens := f.storedTokens(t, entity.ResourceKindPost, "p1")
	require.Len(t, tokens, 1)
	assert.Equal(t, second.Token, tokens[0].Token)
}

func TestShareService_IssueOrReuseToken_ReusesLiveLegacyToken(t *testing.T) {
	f := newShareFixture(t)
	f.putPost(t, "p1", map[string]any{
		"ownerId": "u1",
		"token": map[string]any{
			"sharedToken": "legacy",
			"tokenExpiry": testT0.Add(time.Hour),
		},
	})

	token, err := f.service.IssueOrReuseToken(context.Background(), entity.ResourceKindPost, "p1")
	require.NoError(t, err)
	assert.Equal(t, "legacy", token.Token)
}

func TestShareService_IssueOrReuseToken_NotFound(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.service.IssueOrReuseToken(ctx, entity.ResourceKindPost, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)

	_, err = f.service.IssueOrReuseToken(ctx, entity.ResourceKindCollection, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)

	_, err = f.service.IssueOrReuseToken(ctx, entity.ResourceKind("album"), "p1")
	assert.ErrorIs(t, err, domainerrors.ErrBadInput)
}

func TestShareService_IssueOrReuseToken_ConcurrentCallersShareOneToken(t *testing.T) {
	f := newShareFixture(t)
	f.putPost(t, "p1", map[string]any{"ownerId": "u1"})

	const callers = 16
	tokens := make([]string, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := f.service.IssueOrReuseToken(context.Background(), entity.ResourceKindPost, "p1")
			assert.NoError(t, err)
			if token != nil {
				tokens[i] = token.Token
			}
		}()
	}
	wg.Wait()

	for _, token := range tokens {
		assert.Equal(t, tokens[0], token)
	}
	assert.Len(t, f.storedTokens(t, entity.ResourceKindPost, "p1"), 1)
}

func TestShareService_ValidateToken_Lifecycle(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	f.putPost(t, "p1", map[string]any{"caption": "endcap", "ownerId": "u1"})

	issued, err := f.service.IssueOrReuseToken(ctx, entity.ResourceKindPost, "p1")
	require.NoError(t, err)

	f.clock.Set(testT0.Add(24 * time.Hour))
	result, err := f.service.ValidateToken(ctx, entity.ResourceKindPost, "p1", issued.Token)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "p1", result.Resource["id"])
	assert.Equal(t, "endcap", result.Resource["caption"])
	assert.NotContains(t, result.Resource, "tokens")

	f.clock.Set(testT0.Add(8 * 24 * time.Hour))
	result, err = f.service.ValidateToken(ctx, entity.ResourceKindPost, "p1", issued.Token)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Nil(t, result.Resource)
}

func TestShareService_ValidateToken_Rejects(t *testing.T) {
	f := newShareFixture(t)
	f.putPost(t, "p1", map[string]any{
		"caption": "endcap",
		"tokens": []any{
			map[string]any{"token": "expired", "expiry": testT0.Add(-time.Minute)},
			map[string]any{"token": "boundary", "expiry": testT0},
			map[string]any{"token": "live", "expiry": testT0.Add(time.Hour)},
		},
	})

	tests := []struct {
		name  string
		token string
		valid bool
	}{
		{name: "live token", token: "live", valid: true},
		{name: "expired token", token: "expired", valid: false},
		{name: "token expiring now", token: "boundary", valid: false},
		{name: "random token", token: "3f1c1a8e-4d5b-4c1e-9d8a-000000000000", valid: false},
		{name: "empty token", token: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.service.ValidateToken(context.Background(), entity.ResourceKindPost, "p1", tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Nil(t, result.Resource)
			}
		})
	}
}

func TestShareService_ValidateToken_DoesNotWrite(t *testing.T) {
	f := newShareFixture(t)
	f.putCollection(t, "c1", map[string]any{
		"tokens": []any{
			map[string]any{"token": "expired", "expiry": testT0.Add(-time.Hour)},
		},
	})

	_, err := f.service.ValidateToken(context.Background(), entity.ResourceKindCollection, "c1", "expired")
	require.NoError(t, err)
	assert.Len(t, f.storedTokens(t, entity.ResourceKindCollection, "c1"), 1)
}

func TestShareService_ValidateToken_NotFound(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.ValidateToken(context.Background(), entity.ResourceKindCollection, "missing", "x")
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
}

func TestShareService_ValidateCollectionAccess(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	for _, user := range []*entity.UserProfile{
		{UID: "owner", Email: "owner@acme.com", CompanyID: "acme", Role: entity.RoleAdmin},
		{UID: "colleague", Email: "colleague@acme.com", CompanyID: "acme", Role: entity.RoleMember},
		{UID: "outsider", Email: "outsider@other.com", CompanyID: "other", Role: entity.RoleMember},
		{UID: "loner", Email: "loner@example.com", Role: entity.RolePending},
	} {
		require.NoError(t, f.users.Upsert(ctx, user))
	}

	f.putCollection(t, "private", map[string]any{"ownerId": "owner", "sharedWith": []any{"friend"}})
	f.putCollection(t, "public", map[string]any{"ownerId": "owner", "isShareableOutsideCompany": true})
	f.putCollection(t, "orphan", map[string]any{"ownerId": "ghost"})

	tests := []struct {
		name         string
		collectionID string
		userID       string
		wantErr      error
	}{
		{name: "owner", collectionID: "private", userID: "owner"},
		{name: "shared with, no profile needed", collectionID: "private", userID: "friend"},
		{name: "same company", collectionID: "private", userID: "colleague"},
		{name: "other company on private collection", collectionID: "private", userID: "outsider", wantErr: domainerrors.ErrAccessDenied},
		{name: "no company on private collection", collectionID: "private", userID: "loner", wantErr: domainerrors.ErrAccessDenied},
		{name: "other company on public collection", collectionID: "public", userID: "outsider"},
		{name: "unknown user", collectionID: "private", userID: "nobody", wantErr: domainerrors.ErrUserNotFound},
		{name: "owner profile missing", collectionID: "orphan", userID: "outsider", wantErr: domainerrors.ErrCollectionOwnerNotFound},
		{name: "collection missing", collectionID: "missing", userID: "owner", wantErr: domainerrors.ErrCollectionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.service.ValidateCollectionAccess(ctx, tt.collectionID, tt.userID)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShareService_GenerateShareQR(t *testing.T) {
	f := newShareFixture(t)
	f.putPost(t, "p1", map[string]any{"ownerId": "u1"})

	f.qrcode.EXPECT().
		GenerateShareQR(entity.ResourceKindPost, "p1", mock.AnythingOfType("string")).
		Return([]byte("png"), nil)

	png, err := f.service.GenerateShareQR(context.Background(), entity.ResourceKindPost, "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	assert.Len(t, f.storedTokens(t, entity.ResourceKindPost, "p1"), 1)
}

func TestShareService_GenerateShareQR_NotFound(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.GenerateShareQR(context.Background(), entity.ResourceKindPost, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
