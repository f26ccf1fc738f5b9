package errors

import (
	"displaygram/internal/errors"
)

// ErrorBody is the JSON shape every failed request is answered with.
// Valid is only set by the token validation and access endpoints.
type ErrorBody struct {
	Valid   *bool  `json:"valid,omitempty"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// ToAppError converts any error into an AppError, falling back to a
// generic internal error that carries err's text as details.
func ToAppError(err error) AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	return ErrInternalError.WithDetails(err.Error())
}

// NewErrorBody renders an AppError into the response body.
func NewErrorBody(appErr AppError) ErrorBody {
	return ErrorBody{
		Error:   appErr.Message(),
		Code:    appErr.ErrorCode(),
		Details: appErr.Details(),
	}
}
