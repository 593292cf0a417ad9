package handler

import (
	"encoding/json"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SiteHandlerParams holds dependencies for SiteHandler, injected by Fx.
type SiteHandlerParams struct {
	fx.In

	SettingsUC usecase.SiteSettingsUsecase
	SeedUC     usecase.SeedUsecase
	ThemeUC    usecase.ThemeUsecase
}

// SiteHandler serves the settings singleton, seeding and theme transfer
type SiteHandler struct {
	settingsUC usecase.SiteSettingsUsecase
	seedUC     usecase.SeedUsecase
	themeUC    usecase.ThemeUsecase
}

func NewSiteHandler(params SiteHandlerParams) *SiteHandler {
	return &SiteHandler{
		settingsUC: params.SettingsUC,
		seedUC:     params.SeedUC,
		themeUC:    params.ThemeUC,
	}
}

func (h *SiteHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}

func (h *SiteHandler) UpdateSettings(c echo.Context) error {
	patch := new(entity.SiteSettingsPatch)
	if err := bindBody(c, patch); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.Update(c.Request().Context(), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}

func (h *SiteHandler) Seed(c echo.Context) error {
	result, err := h.seedUC.Seed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// ExportTheme offers the bundle as a JSON download
func (h *SiteHandler) ExportTheme(c echo.Context) error {
	bundle, err := h.themeUC.Export(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrExportFailed.WithCause(err))
	}

	return response.Attachment(c, bundle.FileName(), echo.MIMEApplicationJSON, data)
}

// ImportTheme requires a JSON object body. Keys it does not carry leave their collections alone.
func (h *SiteHandler) ImportTheme(c echo.Context) error {
	var bundle *entity.ThemeImport
	if err := json.NewDecoder(c.Request().Body).Decode(&bundle); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImportPayload.WithDetails(err.Error()))
	}
	if bundle == nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImportPayload.WithDetails("body must be a JSON object"))
	}

	result, err := h.themeUC.Import(c.Request().Context(), bundle)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
