package handler

import (
	"log/slog"

	"displaygram/internal/delivery/http/response"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Logger  *slog.Logger
}

// ShareHandler serves the share token endpoints of posts and collections.
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// PostTokenRequest represents the request body for issuing a post token
type PostTokenRequest struct {
	PostID string `json:"postId" validate:"required"`
}

// ValidatePostTokenRequest represents the request body for validating a post token
type ValidatePostTokenRequest struct {
	PostID string `json:"postId" validate:"required"`
	Token  string `json:"token" validate:"required"`
}

// CollectionTokenRequest represents the request body for issuing a collection token
type CollectionTokenRequest struct {
	CollectionID string `json:"collectionId" validate:"required"`
}

// ValidateCollectionTokenRequest represents the request body for validating a collection token
type ValidateCollectionTokenRequest struct {
	CollectionID string `json:"collectionId" validate:"required"`
	Token        string `json:"token" validate:"required"`
}

// CollectionAccessRequest represents the request body for a collection access check
type CollectionAccessRequest struct {
	CollectionID string `json:"collectionId" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
}

// TokenResponse carries an issued or reused share token
type TokenResponse struct {
	Token string `json:"token"`
}

// ValidationResponse is the outcome of a token validation or access check
type ValidationResponse struct {
	Valid      bool           `json:"valid"`
	Post       map[string]any `json:"post,omitempty"`
	Collection map[string]any `json:"collection,omitempty"`
}

// IssuePostToken handles POST /api/share/posts/token
func (h *ShareHandler) IssuePostToken(c echo.Context) error {
	var req PostTokenRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.issueToken(c, entity.ResourceKindPost, req.PostID)
}

// IssueCollectionToken handles POST /api/share/collections/token
func (h *ShareHandler) IssueCollectionToken(c echo.Context) error {
	var req CollectionTokenRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.issueToken(c, entity.ResourceKindCollection, req.CollectionID)
}

func (h *ShareHandler) issueToken(c echo.Context, kind entity.ResourceKind, resourceID string) error {
	token, err := h.shareUC.IssueOrReuseToken(c.Request().Context(), kind, resourceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, TokenResponse{Token: token.Token})
}

// ValidatePostToken handles POST /api/share/posts/validate
func (h *ShareHandler) ValidatePostToken(c echo.Context) error {
	var req ValidatePostTokenRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleValidationError(c, err)
	}

	result, err := h.shareUC.ValidateToken(c.Request().Context(), entity.ResourceKindPost, req.PostID, req.Token)
	if err != nil {
		return response.HandleValidationError(c, err)
	}

	return response.OK(c, ValidationResponse{Valid: result.Valid, Post: result.Resource})
}

// ValidateCollectionToken handles POST /api/share/collections/validate
func (h *ShareHandler) ValidateCollectionToken(c echo.Context) error {
	var req ValidateCollectionTokenRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleValidationError(c, err)
	}

	result, err := h.shareUC.ValidateToken(c.Request().Context(), entity.ResourceKindCollection, req.CollectionID, req.Token)
	if err != nil {
		return response.HandleValidationError(c, err)
	}

	return response.OK(c, ValidationResponse{Valid: result.Valid, Collection: result.Resource})
}

// ValidateCollectionAccess handles POST /api/share/collections/access
func (h *ShareHandler) ValidateCollectionAccess(c echo.Context) error {
	var req CollectionAccessRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleValidationError(c, err)
	}

	if err := h.shareUC.ValidateCollectionAccess(c.Request().Context(), req.CollectionID, req.UserID); err != nil {
		return response.HandleValidationError(c, err)
	}

	return response.OK(c, ValidationResponse{Valid: true})
}

// PostQRCode handles GET /api/share/posts/:postId/qrcode
func (h *ShareHandler) PostQRCode(c echo.Context) error {
	return h.qrCode(c, entity.ResourceKindPost, c.Param("postId"))
}

// CollectionQRCode handles GET /api/share/collections/:collectionId/qrcode
func (h *ShareHandler) CollectionQRCode(c echo.Context) error {
	return h.qrCode(c, entity.ResourceKindCollection, c.Param("collectionId"))
}

func (h *ShareHandler) qrCode(c echo.Context, kind entity.ResourceKind, resourceID string) error {
	if resourceID == "" {
		return response.Error(c, domainerrors.ErrBadInput)
	}

	png, err := h.shareUC.GenerateShareQR(c.Request().Context(), kind, resourceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

func (h *ShareHandler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	return c.Validate(req)
}
