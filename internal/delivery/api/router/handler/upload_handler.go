package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadFormField is the multipart field carrying the file
const UploadFormField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

func (h *UploadHandler) Upload(c echo.Context) error {
	header, err := c.FormFile(UploadFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(UploadFormField+" is required"))
	}

	file, err := header.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUploadFailed.WithCause(err))
	}
	defer file.Close()

	uploaded, err := h.uploadUC.Upload(c.Request().Context(), &entity.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Body:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, uploaded)
}

// Serve streams a stored upload back with its recorded content type
func (h *UploadHandler) Serve(c echo.Context) error {
	ctx := c.Request().Context()

	stored, err := h.uploadUC.Open(ctx, c.Param("filename"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() {
		if err := stored.Body.Close(); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close upload reader", slog.Any("error", err))
		}
	}()

	if stored.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(stored.Size, 10))
	}

	return c.Stream(http.StatusOK, stored.ContentType, stored.Body)
}
