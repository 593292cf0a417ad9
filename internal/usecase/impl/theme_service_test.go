package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestThemeService(store repository.DocumentStore) *themeService {
	srv := NewThemeService(store, discardLogger(), noop.NewTracerProvider()).(*themeService)
	srv.now = func() time.Time { return fixedNow }

	return srv
}

func seedThemeStore(t *testing.T, store repository.DocumentStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.InsertOne(ctx, repository.CollectionSiteSettings, entity.Document{
		"id":           entity.SiteSettingsID,
		"businessName": "Nutty Co Delhi",
		"theme":        map[string]any{"colors": map[string]any{"primary": "#7CB342"}},
	}))
	require.NoError(t, store.InsertMany(ctx, repository.CollectionCategories, []entity.Document{
		{"id": "c1", "name": "Nuts"},
		{"id": "c2", "name": "Dates"},
	}))
	require.NoError(t, store.InsertMany(ctx, repository.CollectionProducts, []entity.Document{
		{"id": "p1", "name": "Almonds", "basePrice": 450.0},
	}))
}

func TestThemeService_Export(t *testing.T) {
	store := memory.NewDocumentStore()
	seedThemeStore(t, store)

	bundle, err := newTestThemeService(store).Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.ThemeExportVersion, bundle.ExportVersion)
	assert.Equal(t, "2025-03-14T09:26:53Z", bundle.ExportDate)
	assert.Equal(t, "Nutty Co Delhi", bundle.ThemeName)
	assert.Equal(t, "Nutty_Co_Delhi_theme_export.json", bundle.FileName())
	assert.Equal(t, "#7CB342", bundle.SiteSettings["theme"].(map[string]any)["colors"].(map[string]any)["primary"])
	assert.Len(t, bundle.Categories, 2)
	assert.Len(t, bundle.Products, 1)
	assert.NotNil(t, bundle.HeroSlides)
	assert.Empty(t, bundle.HeroSlides)
}

func TestThemeService_Export_DefaultsWithoutSettings(t *testing.T) {
	bundle, err := newTestThemeService(memory.NewDocumentStore()).Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultSiteSettings().BusinessName, bundle.ThemeName)
	assert.Equal(t, entity.SiteSettingsID, bundle.SiteSettings.ID())
}

func TestThemeService_Export_BlankBusinessNameUsesDefaultThemeName(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.InsertOne(ctx, repository.CollectionSiteSettings, entity.Document{
		"id":           entity.SiteSettingsID,
		"businessName": "",
	}))

	bundle, err := newTestThemeService(store).Export(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultThemeName, bundle.ThemeName)
	assert.Equal(t, "Custom_Theme_theme_export.json", bundle.FileName())
}

func TestThemeService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := memory.NewDocumentStore()
	seedThemeStore(t, source)

	bundle, err := newTestThemeService(source).Export(ctx)
	require.NoError(t, err)

	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	var payload entity.ThemeImport
	require.NoError(t, json.Unmarshal(raw, &payload))

	target := memory.NewDocumentStore()
	require.NoError(t, target.InsertMany(ctx, repository.CollectionCategories, []entity.Document{{"id": "stale", "name": "Old"}}))
	require.NoError(t, target.InsertMany(ctx, repository.CollectionTestimonials, []entity.Document{{"id": "t1", "name": "Kept"}}))

	service := newTestThemeService(target)
	for range 2 {
		result, err := service.Import(ctx, &payload)
		require.NoError(t, err)
		assert.Equal(t, &entity.ImportResult{Message: msgThemeImported, Success: true}, result)
	}

	categories, err := target.Find(ctx, repository.CollectionCategories, repository.All(), 0)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "c1", categories[0].ID())
	assert.Equal(t, "c2", categories[1].ID())

	// empty in the bundle, so left alone
	testimonials, err := target.Find(ctx, repository.CollectionTestimonials, repository.All(), 0)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Kept", testimonials[0]["name"])

	settings, err := target.FindOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID))
	require.NoError(t, err)
	assert.Equal(t, "Nutty Co Delhi", settings["businessName"])
}

func TestThemeService_Import_ForcesSettingsID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()

	_, err := newTestThemeService(store).Import(ctx, &entity.ThemeImport{
		SiteSettings: entity.Document{"id": "something-else", "businessName": "Imported"},
	})
	require.NoError(t, err)

	docs, err := store.Find(ctx, repository.CollectionSiteSettings, repository.All(), 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, entity.SiteSettingsID, docs[0].ID())
}

func TestThemeService_Import_AbsentKeysUntouched(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	seedThemeStore(t, store)

	_, err := newTestThemeService(store).Import(ctx, &entity.ThemeImport{
		Products: []entity.Document{{"id": "p9", "name": "Walnuts"}},
	})
	require.NoError(t, err)

	categories, err := store.Count(ctx, repository.CollectionCategories, repository.All())
	require.NoError(t, err)
	assert.Equal(t, int64(2), categories)

	products, err := store.Find(ctx, repository.CollectionProducts, repository.All(), 0)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p9", products[0].ID())

	settings, err := store.FindOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID))
	require.NoError(t, err)
	assert.Equal(t, "Nutty Co Delhi", settings["businessName"])
}

func TestThemeService_Import_StopsAtFailedCollection(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockDocumentStore(t)
	insertErr := errors.New("duplicate key")

	store.EXPECT().DeleteMany(mock.Anything, repository.CollectionCategories, repository.All()).Return(int64(3), nil)
	store.EXPECT().InsertMany(mock.Anything, repository.CollectionCategories, mock.Anything).Return(nil)
	store.EXPECT().DeleteMany(mock.Anything, repository.CollectionProducts, repository.All()).Return(int64(5), nil)
	store.EXPECT().InsertMany(mock.Anything, repository.CollectionProducts, mock.Anything).Return(insertErr)

	_, err := newTestThemeService(store).Import(ctx, &entity.ThemeImport{
		Categories: []entity.Document{{"id": "c1"}},
		Products:   []entity.Document{{"id": "p1"}},
		GiftBoxes:  []entity.Document{{"id": "g1"}},
	})
	require.ErrorIs(t, err, domainerrors.ErrImportFailed)
	assert.Contains(t, err.Error(), "duplicate key")
}
