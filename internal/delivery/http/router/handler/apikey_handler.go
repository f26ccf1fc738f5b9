package handler

import (
	"log/slog"

	"displaygram/internal/delivery/http/middleware"
	"displaygram/internal/delivery/http/response"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIKeyHandlerParams holds dependencies for APIKeyHandler, injected by Fx.
type APIKeyHandlerParams struct {
	fx.In

	APIKeyUC usecase.APIKeyUsecase
	Logger   *slog.Logger
}

// APIKeyHandler serves the external API key endpoints of the caller's company.
type APIKeyHandler struct {
	apiKeyUC usecase.APIKeyUsecase
	logger   *slog.Logger
}

// NewAPIKeyHandler is the constructor for APIKeyHandler
func NewAPIKeyHandler(params APIKeyHandlerParams) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyUC: params.APIKeyUC,
		logger:   params.Logger,
	}
}

// StoreAPIKeyRequest represents the request body for storing a key.
// Env and Key are checked by the use case after the caller's role.
type StoreAPIKeyRequest struct {
	Name string `json:"name"`
	Env  string `json:"env"`
	Key  string `json:"key"`
}

// DeleteAPIKeyRequest represents the request body for deleting a key
type DeleteAPIKeyRequest struct {
	Name string `json:"name" query:"name"`
	Env  string `json:"env" query:"env"`
}

// StoreAPIKeyResponse confirms a stored key without revealing it
type StoreAPIKeyResponse struct {
	OK       bool   `json:"ok"`
	Env      string `json:"env"`
	LastFour string `json:"lastFour"`
}

// GetKeys handles GET /api/integrations/keys
func (h *APIKeyHandler) GetKeys(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Error(c, domainerrors.ErrUnauthorized)
	}

	status, err := h.apiKeyUC.GetKeyStatus(c.Request().Context(), identity.UID, c.QueryParam("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, status)
}

// StoreKey handles POST /api/integrations/keys
func (h *APIKeyHandler) StoreKey(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Error(c, domainerrors.ErrUnauthorized)
	}

	var req StoreAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	lastFour, err := h.apiKeyUC.StoreKey(c.Request().Context(), identity.UID, &usecase.StoreAPIKeyInput{
		Name: req.Name,
		Env:  entity.APIKeyEnv(req.Env),
		Key:  req.Key,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, StoreAPIKeyResponse{OK: true, Env: req.Env, LastFour: lastFour})
}

// DeleteKey handles DELETE /api/integrations/keys
func (h *APIKeyHandler) DeleteKey(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Error(c, domainerrors.ErrUnauthorized)
	}

	var req DeleteAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.apiKeyUC.DeleteKey(c.Request().Context(), identity.UID, req.Name, entity.APIKeyEnv(req.Env)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"ok": true})
}
