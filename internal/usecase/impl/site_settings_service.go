package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type siteSettingsService struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// NewSiteSettingsService creates the site settings service
func NewSiteSettingsService(store repository.DocumentStore, logger *slog.Logger) usecase.SiteSettingsUsecase {
	return &siteSettingsService{
		store:  store,
		logger: logger,
	}
}

// Get returns stored settings over the defaults
func (srv *siteSettingsService) Get(ctx context.Context) (*entity.SiteSettings, error) {
	settings := entity.DefaultSiteSettings()

	doc, err := srv.store.FindOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID))
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return settings, nil
		}

		return nil, fmt.Errorf("failed to find site settings: %w", err)
	}

	if err := doc.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to decode site settings: %w", err)
	}
	settings.ID = entity.SiteSettingsID

	return settings, nil
}

// Update upserts the supplied fields into the singleton
func (srv *siteSettingsService) Update(ctx context.Context, patch *entity.SiteSettingsPatch) (*entity.SiteSettings, error) {
	if patch == nil {
		return nil, domainerrors.ErrNoUpdateFields
	}

	fields, err := patchFields(patch)
	if err != nil {
		return nil, err
	}

	if _, err := srv.store.UpdateOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID), fields, true); err != nil {
		return nil, fmt.Errorf("failed to upsert site settings: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Site settings updated",
		slog.Int("fields", len(fields)),
	)

	return srv.Get(ctx)
}
