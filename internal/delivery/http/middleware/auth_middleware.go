package middleware

import (
	"strings"

	deliverycontext "displaygram/internal/delivery/context"
	"displaygram/internal/delivery/http/response"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AuthMiddleware verifies the caller's ID token.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{accountUC: params.AccountUC}
}

// Authenticate requires an "Authorization: Bearer <ID token>" header and
// stores the verified identity on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Error(c, domainerrors.ErrUnauthorized)
		}

		ctx := c.Request().Context()
		identity, err := m.accountUC.Authenticate(ctx, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(string(deliverycontext.KeyIdentity), identity)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(ctx, identity)))

		return next(c)
	}
}

// GetIdentity returns the identity stored by Authenticate.
func GetIdentity(c echo.Context) (*entity.IdentityToken, bool) {
	identity, ok := c.Get(string(deliverycontext.KeyIdentity)).(*entity.IdentityToken)

	return identity, ok && identity != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
