package response

import (
	"net/http"

	domainerrors "displaygram/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OK writes a 200 JSON response.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// PNG writes a 200 image/png response.
func PNG(c echo.Context, image []byte) error {
	return c.Blob(http.StatusOK, "image/png", image)
}

// Error renders an AppError as the JSON error body.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), domainerrors.NewErrorBody(appErr))
}

// HandleAppError renders application errors and hands everything else to
// the server's HTTPErrorHandler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return Error(c, appErr)
	}

	return errors.WithStack(err)
}

// HandleValidationError renders any error with "valid": false, for the
// endpoints whose clients branch on that field.
func HandleValidationError(c echo.Context, err error) error {
	appErr := domainerrors.ToAppError(err)

	invalid := false
	body := domainerrors.NewErrorBody(appErr)
	body.Valid = &invalid

	return c.JSON(appErr.HTTPCode(), body)
}
