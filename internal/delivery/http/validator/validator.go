// Package validator plugs request validation and strict JSON binding into echo.
package validator

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	domainerrors "displaygram/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate checks a request DTO. Failures are BAD_INPUT errors naming the
// offending fields.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}

	return domainerrors.ErrBadInput.WithDetails("invalid fields: " + strings.Join(fields, ", "))
}

// StrictBinder binds path and query parameters like echo's DefaultBinder
// but decodes JSON bodies rejecting unknown fields.
type StrictBinder struct {
	echo.DefaultBinder
}

// NewBinder creates a StrictBinder.
func NewBinder() *StrictBinder {
	return &StrictBinder{}
}

// Bind implements echo.Binder.
func (b *StrictBinder) Bind(i any, c echo.Context) error {
	if err := b.BindPathParams(c, i); err != nil {
		return badInput(err)
	}

	req := c.Request()
	if req.Method == http.MethodGet || req.Method == http.MethodDelete || req.Method == http.MethodHead {
		if err := b.BindQueryParams(c, i); err != nil {
			return badInput(err)
		}
	}

	if req.ContentLength == 0 {
		return nil
	}

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return badInput(b.BindBody(c, i))
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()

	return badInput(dec.Decode(i))
}

func badInput(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return domainerrors.ErrBadInput.WithDetails(msg)
		}
	}

	return domainerrors.ErrBadInput.WithDetails(err.Error())
}
