package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	themeTracerName  = "storefront/theme"
	msgThemeImported = "Theme imported successfully"
)

// themeCollection pairs a bundle key with its collection.
type themeCollection struct {
	key        string
	collection string
	exported   func(*entity.ThemeBundle) *[]entity.Document
	imported   func(*entity.ThemeImport) []entity.Document
}

// themeCollections is the order collections are exported and imported in.
var themeCollections = []themeCollection{
	{
		key:        "categories",
		collection: repository.CollectionCategories,
		exported:   func(b *entity.ThemeBundle) *[]entity.Document { return &b.Categories },
		imported:   func(b *entity.ThemeImport) []entity.Document { return b.Categories },
	},
	{
		key:        "products",
		collection: repository.CollectionProducts,
		exported:   func(b *entity.ThemeBundle) *[]entity.Document { return &b.Products },
		imported:   func(b *entity.ThemeImport) []entity.Document { return b.Products },
	},
	{
		key:        "heroSlides",
		collection: repository.CollectionHeroSlides,
		exported:   func(b *entity.ThemeBundle) *[]entity.Document { return &b.HeroSlides },
		imported:   func(b *entity.ThemeImport) []entity.Document { return b.HeroSlides },
	},
	{
		key:        "testimonials",
		collection: repository.CollectionTestimonials,
		exported:   func(b *entity.ThemeBundle) *[]entity.Document { return &b.Testimonials },
		imported:   func(b *entity.ThemeImport) []entity.Document { return b.Testimonials },
	},
	{
		key:        "giftBoxes",
		collection: repository.CollectionGiftBoxes,
		exported:   func(b *entity.ThemeBundle) *[]entity.Document { return &b.GiftBoxes },
		imported:   func(b *entity.ThemeImport) []entity.Document { return b.GiftBoxes },
	},
}

type themeService struct {
	store  repository.DocumentStore
	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewThemeService creates the theme export and import service
func NewThemeService(store repository.DocumentStore, logger *slog.Logger, tp trace.TracerProvider) usecase.ThemeUsecase {
	return &themeService{
		store:  store,
		logger: logger,
		tracer: tp.Tracer(themeTracerName),
		now:    time.Now,
	}
}

func (srv *themeService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Export reads the settings and all content collections without limits
func (srv *themeService) Export(ctx context.Context) (*entity.ThemeBundle, error) {
	ctx, span := srv.tracer.Start(ctx, "theme.export")
	defer span.End()

	settings, err := srv.exportSettings(ctx)
	if err != nil {
		return nil, srv.fail(span, domainerrors.ErrExportFailed.WithCause(err))
	}

	themeName := entity.ThemeNameOf(settings)
	bundle := entity.NewThemeBundle(themeName, srv.now())
	bundle.SiteSettings = settings

	for _, tc := range themeCollections {
		docs, err := srv.store.Find(ctx, tc.collection, repository.All(), 0)
		if err != nil {
			return nil, srv.fail(span, domainerrors.ErrExportFailed.WithCause(err))
		}
		*tc.exported(bundle) = docs
		span.SetAttributes(attribute.Int("theme.export."+tc.key, len(docs)))
	}

	srv.getLogger(ctx).Info("Theme exported", slog.String("theme_name", themeName))

	return bundle, nil
}

func (srv *themeService) exportSettings(ctx context.Context) (entity.Document, error) {
	doc, err := srv.store.FindOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID))
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, err
	}

	return entity.ToDocument(entity.DefaultSiteSettings())
}

// Import overwrites the settings singleton when present, then replaces each
// non-empty collection with the bundle's documents, ids included.
func (srv *themeService) Import(ctx context.Context, bundle *entity.ThemeImport) (*entity.ImportResult, error) {
	ctx, span := srv.tracer.Start(ctx, "theme.import")
	defer span.End()

	logger := srv.getLogger(ctx)

	if bundle.SiteSettings != nil {
		settings := bundle.SiteSettings.Clone()
		settings[entity.FieldID] = entity.SiteSettingsID

		err := srv.store.ReplaceOne(ctx, repository.CollectionSiteSettings, repository.ByID(entity.SiteSettingsID), settings, true)
		if err != nil {
			logger.Error("Theme import failed", slog.String("step", "siteSettings"), slog.Any("error", err))

			return nil, srv.fail(span, domainerrors.ErrImportFailed.WithCause(err))
		}
		span.AddEvent("siteSettings replaced")
	}

	for _, tc := range themeCollections {
		docs := tc.imported(bundle)
		if len(docs) == 0 {
			continue
		}

		if err := srv.replaceCollection(ctx, tc, docs); err != nil {
			logger.Error("Theme import failed", slog.String("step", tc.key), slog.Any("error", err))

			return nil, srv.fail(span, domainerrors.ErrImportFailed.WithCause(err))
		}
	}

	logger.Info("Theme imported")

	return &entity.ImportResult{Message: msgThemeImported, Success: true}, nil
}

func (srv *themeService) replaceCollection(ctx context.Context, tc themeCollection, docs []entity.Document) error {
	ctx, span := srv.tracer.Start(ctx, "theme.import."+tc.key,
		trace.WithAttributes(
			attribute.String("db.collection", tc.collection),
			attribute.Int("theme.documents", len(docs)),
		),
	)
	defer span.End()

	deleted, err := srv.store.DeleteMany(ctx, tc.collection, repository.All())
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", tc.collection, err)
	}
	if err := srv.store.InsertMany(ctx, tc.collection, docs); err != nil {
		return fmt.Errorf("failed to load %s: %w", tc.collection, err)
	}

	span.SetAttributes(attribute.Int64("theme.deleted", deleted))

	return nil
}

func (srv *themeService) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
