package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

const (
	msgAlreadySeeded = "Data already seeded"
	msgSeeded        = "Data seeded successfully"
)

type seedService struct {
	store  repository.DocumentStore
	source service.SeedSource
	logger *slog.Logger
	newID  func() string
}

// NewSeedService creates the seed service
func NewSeedService(store repository.DocumentStore, source service.SeedSource, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{
		store:  store,
		source: source,
		logger: logger,
		newID:  entity.NewID,
	}
}

// Seed loads the fixture unless any product already exists
func (srv *seedService) Seed(ctx context.Context) (*usecase.SeedResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	existing, err := srv.store.Count(ctx, repository.CollectionProducts, repository.All())
	if err != nil {
		logger.Error("Seed failed", slog.Any("error", err))

		return nil, domainerrors.ErrSeedFailed.WithCause(err)
	}
	if existing > 0 {
		return &usecase.SeedResult{Message: msgAlreadySeeded, Products: &existing}, nil
	}

	if err := srv.load(ctx); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))

		return nil, domainerrors.ErrSeedFailed.WithCause(err)
	}

	logger.Info("Store seeded")

	return &usecase.SeedResult{Message: msgSeeded}, nil
}

func (srv *seedService) load(ctx context.Context) error {
	data, err := srv.source.Load()
	if err != nil {
		return err
	}

	batches := []struct {
		collection string
		docs       []entity.Document
	}{
		{repository.CollectionCategories, data.Categories},
		{repository.CollectionProducts, data.Products},
		{repository.CollectionHeroSlides, data.HeroSlides},
		{repository.CollectionTestimonials, data.Testimonials},
		{repository.CollectionGiftBoxes, data.GiftBoxes},
	}

	for _, batch := range batches {
		if len(batch.docs) == 0 {
			continue
		}
		if err := srv.store.InsertMany(ctx, batch.collection, srv.withIDs(batch.docs)); err != nil {
			return fmt.Errorf("failed to seed %s: %w", batch.collection, err)
		}
	}

	if len(data.SiteSettings) > 0 {
		fields := data.SiteSettings.Clone()
		delete(fields, entity.FieldID)

		_, err := srv.store.UpdateOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID), fields, true)
		if err != nil {
			return fmt.Errorf("failed to seed site settings: %w", err)
		}
	}

	return nil
}

// withIDs gives fixture entries without an id a generated one.
func (srv *seedService) withIDs(docs []entity.Document) []entity.Document {
	out := make([]entity.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.ID() == "" {
			doc = doc.Clone()
			doc[entity.FieldID] = srv.newID()
		}
		out = append(out, doc)
	}

	return out
}
