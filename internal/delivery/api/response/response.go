// Package response renders handler results. Successful bodies are written as
// bare JSON documents; failures use the error envelope of domain/errors.
package response

import (
	"mime"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JSON writes data as the whole response body
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

func OK(c echo.Context, data any) error {
	return JSON(c, http.StatusOK, data)
}

func Ack(c echo.Context, message string) error {
	return JSON(c, http.StatusOK, entity.Message{Message: message})
}

// Attachment writes data as a download named filename. The name is quoted or
// RFC 2231 encoded as needed, so it may carry quotes or non-ASCII text.
func Attachment(c echo.Context, filename, contentType string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, contentDisposition(filename))

	return c.Blob(http.StatusOK, contentType, data)
}

func contentDisposition(filename string) string {
	if disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); disposition != "" {
		return disposition
	}

	return "attachment"
}

// Error writes the error envelope
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// no details on server and auth failures
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders err when it carries an AppError and hands anything
// else back to echo's HTTPErrorHandler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return err
}

func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
