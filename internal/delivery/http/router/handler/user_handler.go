// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"displaygram/internal/delivery/http/response"
	"displaygram/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// UserExistsRequest represents the request body for an account lookup
type UserExistsRequest struct {
	Email string `json:"email" validate:"required"`
}

// UserExistsResponse reports whether an account exists for the e-mail
type UserExistsResponse struct {
	Exists bool   `json:"exists"`
	UID    string `json:"uid,omitempty"`
}

// CheckUserExists handles the account existence lookup.
func (h *UserHandler) CheckUserExists(c echo.Context) error {
	var req UserExistsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	existence, err := h.accountUC.CheckUserExists(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, UserExistsResponse{Exists: existence.Exists, UID: existence.UID})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
