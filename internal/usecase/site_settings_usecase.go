package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SiteSettingsUsecase manages the settings singleton
type SiteSettingsUsecase interface {
	// Get returns the stored settings over the defaults, or the defaults when nothing is stored
	Get(ctx context.Context) (*entity.SiteSettings, error)

	// Update upserts the non-nil fields of patch and returns the settings as stored afterwards
	Update(ctx context.Context, patch *entity.SiteSettingsPatch) (*entity.SiteSettings, error)
}
