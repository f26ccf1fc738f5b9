package handler

import (
	"log/slog"

	"displaygram/internal/delivery/http/response"
	"displaygram/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SignupHandlerParams holds dependencies for SignupHandler, injected by Fx.
type SignupHandlerParams struct {
	fx.In

	SignupUC usecase.SignupUsecase
	Logger   *slog.Logger
}

// SignupHandler serves the public signup endpoints.
type SignupHandler struct {
	signupUC usecase.SignupUsecase
	logger   *slog.Logger
}

// NewSignupHandler is the constructor for SignupHandler
func NewSignupHandler(params SignupHandlerParams) *SignupHandler {
	return &SignupHandler{
		signupUC: params.SignupUC,
		logger:   params.Logger,
	}
}

// CompanySignupRequest represents the request body for creating a company
type CompanySignupRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	WorkEmail    string `json:"workEmail" validate:"required"`
	CompanyName  string `json:"companyName" validate:"required"`
	UserTypeHint string `json:"userTypeHint"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
	Password     string `json:"password"`
}

// CompanySignupResponse identifies the reserved company and the access request
type CompanySignupResponse struct {
	OK        bool   `json:"ok"`
	CompanyID string `json:"companyId"`
	RequestID string `json:"requestId"`
}

// SignupRequestRequest represents the request body for joining an existing company
type SignupRequestRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

// SignupRequestResponse reports how a join request was resolved
type SignupRequestResponse struct {
	Code      usecase.SignupRequestCode `json:"code"`
	UID       string                    `json:"uid,omitempty"`
	RequestID string                    `json:"requestId,omitempty"`
}

// CreateCompany handles POST /api/signup/company
func (h *SignupHandler) CreateCompany(c echo.Context) error {
	var req CompanySignupRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.signupUC.ReserveAndCreate(c.Request().Context(), &usecase.CompanySignupInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		WorkEmail:    req.WorkEmail,
		CompanyName:  req.CompanyName,
		UserTypeHint: req.UserTypeHint,
		Phone:        req.Phone,
		Notes:        req.Notes,
		Password:     req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, CompanySignupResponse{OK: true, CompanyID: output.CompanyID, RequestID: output.RequestID})
}

// SubmitRequest handles POST /api/signup/request
func (h *SignupHandler) SubmitRequest(c echo.Context) error {
	var req SignupRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.signupUC.SubmitSignupRequest(c.Request().Context(), &usecase.SignupRequestInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, SignupRequestResponse{Code: output.Code, UID: output.UID, RequestID: output.RequestID})
}
