package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFixture() *service.SeedData {
	return &service.SeedData{
		Categories: []entity.Document{{"id": "c1", "name": "Nuts", "slug": "nuts"}},
		Products: []entity.Document{
			{"id": "p1", "name": "Almonds", "basePrice": 450},
			{"name": "Cashews", "basePrice": 520},
		},
		Testimonials: []entity.Document{{"id": "t1", "name": "Asha"}},
		SiteSettings: entity.Document{"id": "ignored", "businessName": "DryFruto"},
	}
}

func TestSeedService_Seed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	source := mockService.NewMockSeedSource(t)
	source.EXPECT().Load().Return(seedFixture(), nil)

	srv := NewSeedService(store, source, discardLogger()).(*seedService)
	srv.newID = sequentialIDs("generated")

	result, err := srv.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, msgSeeded, result.Message)
	assert.Nil(t, result.Products)

	products, err := store.Find(ctx, repository.CollectionProducts, repository.All(), 0)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID())
	assert.Equal(t, "generated", products[1].ID())

	heroSlides, err := store.Count(ctx, repository.CollectionHeroSlides, repository.All())
	require.NoError(t, err)
	assert.Zero(t, heroSlides)

	settings, err := store.FindOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID))
	require.NoError(t, err)
	assert.Equal(t, "DryFruto", settings["businessName"])
}

func TestSeedService_Seed_AlreadySeeded(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.InsertOne(ctx, repository.CollectionProducts, entity.Document{"id": "existing"}))

	// Load must not be called
	source := mockService.NewMockSeedSource(t)

	result, err := NewSeedService(store, source, discardLogger()).Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, msgAlreadySeeded, result.Message)
	require.NotNil(t, result.Products)
	assert.Equal(t, int64(1), *result.Products)
}

func TestSeedService_Seed_InsertFailure(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockDocumentStore(t)
	source := mockService.NewMockSeedSource(t)
	insertErr := errors.New("write concern error")

	store.EXPECT().Count(ctx, repository.CollectionProducts, repository.All()).Return(int64(0), nil)
	source.EXPECT().Load().Return(seedFixture(), nil)
	store.EXPECT().InsertMany(ctx, repository.CollectionCategories, []entity.Document{{"id": "c1", "name": "Nuts", "slug": "nuts"}}).Return(insertErr)

	_, err := NewSeedService(store, source, discardLogger()).Seed(ctx)
	require.ErrorIs(t, err, domainerrors.ErrSeedFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message(), "write concern error")
}
