package handler

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindBody decodes the JSON body into dst and runs the registered validator.
// Unknown fields are ignored; an empty body leaves dst untouched.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(bindMessage(err))
	}

	return c.Validate(dst)
}

func bindMessage(err error) string {
	if httpErr, ok := err.(*echo.HTTPError); ok {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return err.Error()
}
