package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"displaygram/config"
	"displaygram/internal/delivery/http/middleware"
	"displaygram/internal/delivery/http/router"
	"displaygram/internal/delivery/http/router/handler"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	mockUC "displaygram/internal/mocks/usecase"
	"displaygram/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	e       *echo.Echo
	share   *mockUC.MockShareUsecase
	signup  *mockUC.MockSignupUsecase
	account *mockUC.MockAccountUsecase
	apiKeys *mockUC.MockAPIKeyUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.CORS.AllowOrigins = []string{"https://app.example.com"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixture{
		e:       NewEcho(cfg, logger),
		share:   mockUC.NewMockShareUsecase(t),
		signup:  mockUC.NewMockSignupUsecase(t),
		account: mockUC.NewMockAccountUsecase(t),
		apiKeys: mockUC.NewMockAPIKeyUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AccountUC: f.account, Logger: logger}),
		ShareHandler:   handler.NewShareHandler(handler.ShareHandlerParams{ShareUC: f.share, Logger: logger}),
		SignupHandler:  handler.NewSignupHandler(handler.SignupHandlerParams{SignupUC: f.signup, Logger: logger}),
		APIKeyHandler:  handler.NewAPIKeyHandler(handler.APIKeyHandlerParams{APIKeyUC: f.apiKeys, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AccountUC: f.account}),
	}).RegisterRoutes(f.e)

	return f
}

func (f *apiFixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestShareRoutes_IssueToken(t *testing.T) {
	f := newAPIFixture(t)

	f.share.EXPECT().
		IssueOrReuseToken(mock.Anything, entity.ResourceKindPost, "p1").
		Return(&entity.ShareToken{Token: "abc"}, nil)
	f.share.EXPECT().
		IssueOrReuseToken(mock.Anything, entity.ResourceKindCollection, "c1").
		Return(&entity.ShareToken{Token: "def"}, nil)

	rec := f.do(http.MethodPost, "/api/share/posts/token", `{"postId":"p1"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"token": "abc"}, decodeBody(t, rec))

	rec = f.do(http.MethodPost, "/api/share/collections/token", `{"collectionId":"c1"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"token": "def"}, decodeBody(t, rec))
}

func TestShareRoutes_IssueTokenErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*mockUC.MockShareUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing postId",
			body:       `{}`,
			setupMock:  func(*mockUC.MockShareUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_INPUT",
		},
		{
			name:       "unknown field",
			body:       `{"postId":"p1","admin":true}`,
			setupMock:  func(*mockUC.MockShareUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_INPUT",
		},
		{
			name:       "malformed json",
			body:       `{"postId":`,
			setupMock:  func(*mockUC.MockShareUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_INPUT",
		},
		{
			name: "post not found",
			body: `{"postId":"missing"}`,
			setupMock: func(m *mockUC.MockShareUsecase) {
				m.EXPECT().
					IssueOrReuseToken(mock.Anything, entity.ResourceKindPost, "missing").
					Return(nil, domainerrors.ErrPostNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "POST_NOT_FOUND",
		},
		{
			name: "unexpected failure",
			body: `{"postId":"p1"}`,
			setupMock: func(m *mockUC.MockShareUsecase) {
				m.EXPECT().
					IssueOrReuseToken(mock.Anything, entity.ResourceKindPost, "p1").
					Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			tt.setupMock(f.share)

			rec := f.do(http.MethodPost, "/api/share/posts/token", tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotEmpty(t, body["error"])
			assert.NotContains(t, body, "valid")
		})
	}
}

func TestShareRoutes_ValidateToken(t *testing.T) {
	f := newAPIFixture(t)

	f.share.EXPECT().
		ValidateToken(mock.Anything, entity.ResourceKindPost, "p1", "abc").
		Return(&usecase.TokenValidation{Valid: true, Resource: map[string]any{"caption": "aisle 4"}}, nil)
	f.share.EXPECT().
		ValidateToken(mock.Anything, entity.ResourceKindPost, "p1", "stale").
		Return(&usecase.TokenValidation{Valid: false}, nil)
	f.share.EXPECT().
		ValidateToken(mock.Anything, entity.ResourceKindCollection, "c1", "abc").
		Return(&usecase.TokenValidation{Valid: true, Resource: map[string]any{"name": "Spring"}}, nil)

	rec := f.do(http.MethodPost, "/api/share/posts/validate", `{"postId":"p1","token":"abc"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"valid": true, "post": map[string]any{"caption": "aisle 4"}}, decodeBody(t, rec))

	rec = f.do(http.MethodPost, "/api/share/posts/validate", `{"postId":"p1","token":"stale"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"valid": false}, decodeBody(t, rec))

	rec = f.do(http.MethodPost, "/api/share/collections/validate", `{"collectionId":"c1","token":"abc"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"valid": true, "collection": map[string]any{"name": "Spring"}}, decodeBody(t, rec))
}

func TestShareRoutes_ValidateErrorsCarryValidFalse(t *testing.T) {
	f := newAPIFixture(t)

	f.share.EXPECT().
		ValidateToken(mock.Anything, entity.ResourceKindPost, "gone", "abc").
		Return(nil, domainerrors.ErrPostNotFound)

	rec := f.do(http.MethodPost, "/api/share/posts/validate", `{"postId":"p1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "BAD_INPUT", body["code"])

	rec = f.do(http.MethodPost, "/api/share/posts/validate", `{"postId":"gone","token":"abc"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "POST_NOT_FOUND", body["code"])
	assert.NotContains(t, body, "post")
}

func TestShareRoutes_CollectionAccess(t *testing.T) {
	f := newAPIFixture(t)

	f.share.EXPECT().ValidateCollectionAccess(mock.Anything, "c1", "member").Return(nil)
	f.share.EXPECT().ValidateCollectionAccess(mock.Anything, "c1", "outsider").Return(domainerrors.ErrAccessDenied)
	f.share.EXPECT().ValidateCollectionAccess(mock.Anything, "c1", "ghost").Return(domainerrors.ErrUserNotFound)

	rec := f.do(http.MethodPost, "/api/share/collections/access", `{"collectionId":"c1","userId":"member"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"valid": true}, decodeBody(t, rec))

	rec = f.do(http.MethodPost, "/api/share/collections/access", `{"collectionId":"c1","userId":"outsider"}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Access denied. Not authorized.", body["error"])

	rec = f.do(http.MethodPost, "/api/share/collections/access", `{"collectionId":"c1","userId":"ghost"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestShareRoutes_QRCode(t *testing.T) {
	f := newAPIFixture(t)

	png := []byte("\x89PNG\r\n\x1a\nfake")
	f.share.EXPECT().GenerateShareQR(mock.Anything, entity.ResourceKindPost, "p1").Return(png, nil)
	f.share.EXPECT().GenerateShareQR(mock.Anything, entity.ResourceKindCollection, "nope").Return(nil, domainerrors.ErrCollectionNotFound)

	rec := f.do(http.MethodGet, "/api/share/posts/p1/qrcode", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = f.do(http.MethodGet, "/api/share/collections/nope/qrcode", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COLLECTION_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestSignupRoutes_CreateCompany(t *testing.T) {
	f := newAPIFixture(t)

	f.signup.EXPECT().
		ReserveAndCreate(mock.Anything, &usecase.CompanySignupInput{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			WorkEmail:   "ada@acme.com",
			CompanyName: "Acme Co",
		}).
		Return(&usecase.CompanySignupOutput{CompanyID: "co1", RequestID: "ar1"}, nil)

	rec := f.do(http.MethodPost, "/api/signup/company",
		`{"firstName":"Ada","lastName":"Lovelace","workEmail":"ada@acme.com","companyName":"Acme Co"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"ok": true, "companyId": "co1", "requestId": "ar1"}, decodeBody(t, rec))
}

func TestSignupRoutes_CreateCompanyConflict(t *testing.T) {
	f := newAPIFixture(t)

	f.signup.EXPECT().
		ReserveAndCreate(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCompanyExistsRequiresInvite)

	rec := f.do(http.MethodPost, "/api/signup/company",
		`{"firstName":"Ada","lastName":"Lovelace","workEmail":"ada@acme.com","companyName":"Acme Co"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domainerrors.CodeCompanyExistsRequiresInvite, decodeBody(t, rec)["code"])
}

func TestSignupRoutes_CreateCompanyRequiresFields(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/signup/company", `{"firstName":"Ada","workEmail":"ada@acme.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "BAD_INPUT", body["code"])
	assert.Contains(t, body["details"], "lastName")
	assert.Contains(t, body["details"], "companyName")
}

func TestSignupRoutes_SubmitRequest(t *testing.T) {
	f := newAPIFixture(t)

	f.signup.EXPECT().
		SubmitSignupRequest(mock.Anything, mock.MatchedBy(func(in *usecase.SignupRequestInput) bool {
			return in.Email == "grace@acme.com" && in.CompanyName == "Acme Co"
		})).
		Return(&usecase.SignupRequestOutput{Code: usecase.SignupRequestAlreadyUser, UID: "uid-grace"}, nil)

	rec := f.do(http.MethodPost, "/api/signup/request",
		`{"firstName":"Grace","lastName":"Hopper","email":"grace@acme.com","companyName":"Acme Co"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"code": "ALREADY_USER", "uid": "uid-grace"}, decodeBody(t, rec))
}

func TestUserRoutes_CheckUserExists(t *testing.T) {
	f := newAPIFixture(t)

	f.account.EXPECT().CheckUserExists(mock.Anything, "nobody@acme.com").Return(&usecase.AccountExistence{Exists: false}, nil)
	f.account.EXPECT().CheckUserExists(mock.Anything, "ada@acme.com").Return(&usecase.AccountExistence{Exists: true, UID: "uid-ada"}, nil)
	f.account.EXPECT().CheckUserExists(mock.Anything, "flaky@acme.com").Return(nil, domainerrors.ErrAuthLookupFailed)

	rec := f.do(http.MethodPost, "/api/users/exists", `{"email":"nobody@acme.com"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"exists": false}, decodeBody(t, rec))

	rec = f.do(http.MethodPost, "/api/users/exists", `{"email":"ada@acme.com"}`, nil)
	assert.Equal(t, map[string]any{"exists": true, "uid": "uid-ada"}, decodeBody(t, rec))

	rec = f.do(http.MethodPost, "/api/users/exists", `{"email":"flaky@acme.com"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "AUTH_LOOKUP_ERROR", decodeBody(t, rec)["code"])
}

func TestIntegrationRoutes_RequireBearerToken(t *testing.T) {
	f := newAPIFixture(t)

	f.account.EXPECT().Authenticate(mock.Anything, "forged").Return(nil, domainerrors.ErrInvalidIDToken)

	rec := f.do(http.MethodGet, "/api/integrations/keys", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeBody(t, rec)["code"])

	rec = f.do(http.MethodGet, "/api/integrations/keys", "", map[string]string{"Authorization": "Basic abc"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/api/integrations/keys", "", map[string]string{"Authorization": "Bearer forged"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeBody(t, rec)["code"])
}

func TestIntegrationRoutes_Keys(t *testing.T) {
	f := newAPIFixture(t)
	auth := map[string]string{"Authorization": "Bearer good"}

	f.account.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.IdentityToken{UID: "uid-admin"}, nil)
	f.apiKeys.EXPECT().
		GetKeyStatus(mock.Anything, "uid-admin", "").
		Return(&usecase.APIKeyStatusOutput{
			Prod: entity.APIKeyStatus{Exists: true, LastFour: "5678"},
			Dev:  entity.APIKeyStatus{Exists: false},
		}, nil)
	f.apiKeys.EXPECT().
		StoreKey(mock.Anything, "uid-admin", &usecase.StoreAPIKeyInput{Env: entity.APIKeyEnvDev, Key: "sk-dev-1234"}).
		Return("1234", nil)
	f.apiKeys.EXPECT().
		DeleteKey(mock.Anything, "uid-admin", "", entity.APIKeyEnvProd).
		Return(nil)

	rec := f.do(http.MethodGet, "/api/integrations/keys", "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"prod": map[string]any{"exists": true, "lastFour": "5678"},
		"dev":  map[string]any{"exists": false},
	}, decodeBody(t, rec))

	rec = f.do(http.MethodPost, "/api/integrations/keys", `{"env":"dev","key":"sk-dev-1234"}`, auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"ok": true, "env": "dev", "lastFour": "1234"}, decodeBody(t, rec))
	assert.NotContains(t, rec.Body.String(), "sk-dev-1234")

	rec = f.do(http.MethodDelete, "/api/integrations/keys", `{"env":"prod"}`, auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"ok": true}, decodeBody(t, rec))
}

func TestIntegrationRoutes_AdminRequired(t *testing.T) {
	f := newAPIFixture(t)

	f.account.EXPECT().Authenticate(mock.Anything, "member").Return(&entity.IdentityToken{UID: "uid-member"}, nil)
	f.apiKeys.EXPECT().StoreKey(mock.Anything, "uid-member", mock.Anything).Return("", domainerrors.ErrAdminRequired)

	rec := f.do(http.MethodPost, "/api/integrations/keys", `{"env":"prod","key":"k"}`, map[string]string{"Authorization": "Bearer member"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ADMIN_REQUIRED", decodeBody(t, rec)["code"])
}

func TestServer_RoutingErrorsAreJSON(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/share/posts/token", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeBody(t, rec)["code"])

	rec = f.do(http.MethodGet, "/api/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, rec)["code"])

	rec = f.do(http.MethodPost, "/api/share/posts/token", `{"postId":"`+strings.Repeat("x", 2048)+`"}`, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", decodeBody(t, rec)["code"])
}

func TestServer_CORSPreflightAndRequestID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodOptions, "/api/share/posts/token", "", map[string]string{
		echo.HeaderOrigin:                     "https://app.example.com",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = f.do(http.MethodGet, "/health", "", map[string]string{echo.HeaderXRequestID: "req-7"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-7", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, map[string]any{"status": "ok"}, decodeBody(t, rec))
}
