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
)

// List caps. Reference content is small; submissions can grow.
const (
	referenceListLimit int64 = 100
	bulkListLimit      int64 = 1000
)

// contentDescriptor binds the generic CRUD service to one collection.
type contentDescriptor[E, C any] struct {
	collection string
	listLimit  int64
	notFound   *domainerrors.BaseError

	// blank returns an entity holding the defaults applied to fields missing from stored documents
	blank func() *E

	// build turns a validated creation payload into a new entity
	build func(id string, input *C, now time.Time) *E
}

type contentService[E, C, U any] struct {
	store  repository.DocumentStore
	logger *slog.Logger
	desc   contentDescriptor[E, C]
	now    func() time.Time
	newID  func() string
}

func newContentService[E, C, U any](store repository.DocumentStore, logger *slog.Logger, desc contentDescriptor[E, C]) *contentService[E, C, U] {
	if desc.blank == nil {
		desc.blank = func() *E { return new(E) }
	}

	return &contentService[E, C, U]{
		store:  store,
		logger: logger,
		desc:   desc,
		now:    time.Now,
		newID:  entity.NewID,
	}
}

func (srv *contentService[E, C, U]) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the collection in insertion order
func (srv *contentService[E, C, U]) List(ctx context.Context) ([]*E, error) {
	docs, err := srv.store.Find(ctx, srv.desc.collection, repository.All(), srv.desc.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", srv.desc.collection, err)
	}

	items := make([]*E, 0, len(docs))
	for _, doc := range docs {
		item, err := srv.decode(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Get returns one entity by id
func (srv *contentService[E, C, U]) Get(ctx context.Context, id string) (*E, error) {
	doc, err := srv.store.FindOne(ctx, srv.desc.collection, repository.ByID(id))
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, srv.desc.notFound
		}

		return nil, fmt.Errorf("failed to find %s: %w", srv.desc.collection, err)
	}

	return srv.decode(doc)
}

// Create stores a new entity under a generated id
func (srv *contentService[E, C, U]) Create(ctx context.Context, input *C) (*E, error) {
	id := srv.newID()
	item := srv.desc.build(id, input, srv.now())

	doc, err := entity.ToDocument(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", srv.desc.collection, err)
	}

	if err := srv.store.InsertOne(ctx, srv.desc.collection, doc); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", srv.desc.collection, err)
	}

	srv.getLogger(ctx).Debug("Content created",
		slog.String("collection", srv.desc.collection),
		slog.String("id", id),
	)

	return item, nil
}

// Update sets the supplied fields and re-reads the stored entity
func (srv *contentService[E, C, U]) Update(ctx context.Context, id string, patch *U) (*E, error) {
	if patch == nil {
		return nil, domainerrors.ErrNoUpdateFields
	}

	fields, err := patchFields(patch)
	if err != nil {
		return nil, err
	}

	matched, err := srv.store.UpdateOne(ctx, srv.desc.collection, repository.ByID(id), fields, false)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", srv.desc.collection, err)
	}
	if matched == 0 {
		return nil, srv.desc.notFound
	}

	return srv.Get(ctx, id)
}

// Delete removes one entity by id
func (srv *contentService[E, C, U]) Delete(ctx context.Context, id string) error {
	deleted, err := srv.store.DeleteOne(ctx, srv.desc.collection, repository.ByID(id))
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", srv.desc.collection, err)
	}
	if deleted == 0 {
		return srv.desc.notFound
	}

	srv.getLogger(ctx).Debug("Content deleted",
		slog.String("collection", srv.desc.collection),
		slog.String("id", id),
	)

	return nil
}

func (srv *contentService[E, C, U]) decode(doc entity.Document) (*E, error) {
	item := srv.desc.blank()
	if err := doc.Decode(item); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", srv.desc.collection, err)
	}

	return item, nil
}

// patchFields returns the fields a partial update sets. The id is never updatable.
func patchFields(patch any) (entity.Document, error) {
	fields, err := entity.ToDocument(patch)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	delete(fields, entity.FieldID)

	if len(fields) == 0 {
		return nil, domainerrors.ErrNoUpdateFields
	}

	return fields, nil
}

// NewCategoryService creates the category CRUD service
func NewCategoryService(store repository.DocumentStore, logger *slog.Logger) usecase.CategoryUsecase {
	return newContentService[entity.Category, entity.CategoryInput, entity.CategoryPatch](store, logger, contentDescriptor[entity.Category, entity.CategoryInput]{
		collection: repository.CollectionCategories,
		listLimit:  referenceListLimit,
		notFound:   domainerrors.ErrCategoryNotFound,
		build: func(id string, input *entity.CategoryInput, _ time.Time) *entity.Category {
			return entity.NewCategory(id, input)
		},
	})
}

// NewProductService creates the product CRUD service
func NewProductService(store repository.DocumentStore, logger *slog.Logger) usecase.ProductUsecase {
	return newContentService[entity.Product, entity.ProductInput, entity.ProductPatch](store, logger, contentDescriptor[entity.Product, entity.ProductInput]{
		collection: repository.CollectionProducts,
		listLimit:  bulkListLimit,
		notFound:   domainerrors.ErrProductNotFound,
		blank:      entity.BlankProduct,
		build: func(id string, input *entity.ProductInput, _ time.Time) *entity.Product {
			return entity.NewProduct(id, input)
		},
	})
}

// NewHeroSlideService creates the hero slide CRUD service
func NewHeroSlideService(store repository.DocumentStore, logger *slog.Logger) usecase.HeroSlideUsecase {
	return newContentService[entity.HeroSlide, entity.HeroSlideInput, entity.HeroSlidePatch](store, logger, contentDescriptor[entity.HeroSlide, entity.HeroSlideInput]{
		collection: repository.CollectionHeroSlides,
		listLimit:  referenceListLimit,
		notFound:   domainerrors.ErrHeroSlideNotFound,
		build: func(id string, input *entity.HeroSlideInput, _ time.Time) *entity.HeroSlide {
			return entity.NewHeroSlide(id, input)
		},
	})
}

// NewTestimonialService creates the testimonial CRUD service
func NewTestimonialService(store repository.DocumentStore, logger *slog.Logger) usecase.TestimonialUsecase {
	return newContentService[entity.Testimonial, entity.TestimonialInput, entity.TestimonialPatch](store, logger, contentDescriptor[entity.Testimonial, entity.TestimonialInput]{
		collection: repository.CollectionTestimonials,
		listLimit:  referenceListLimit,
		notFound:   domainerrors.ErrTestimonialNotFound,
		build: func(id string, input *entity.TestimonialInput, _ time.Time) *entity.Testimonial {
			return entity.NewTestimonial(id, input)
		},
	})
}

// NewGiftBoxService creates the gift box CRUD service
func NewGiftBoxService(store repository.DocumentStore, logger *slog.Logger) usecase.GiftBoxUsecase {
	return newContentService[entity.GiftBox, entity.GiftBoxInput, entity.GiftBoxPatch](store, logger, contentDescriptor[entity.GiftBox, entity.GiftBoxInput]{
		collection: repository.CollectionGiftBoxes,
		listLimit:  referenceListLimit,
		notFound:   domainerrors.ErrGiftBoxNotFound,
		build: func(id string, input *entity.GiftBoxInput, _ time.Time) *entity.GiftBox {
			return entity.NewGiftBox(id, input)
		},
	})
}

// NewBulkOrderService creates the bulk order service. New orders start with status "new".
func NewBulkOrderService(store repository.DocumentStore, logger *slog.Logger) usecase.BulkOrderUsecase {
	return newContentService[entity.BulkOrder, entity.BulkOrderInput, entity.BulkOrderPatch](store, logger, contentDescriptor[entity.BulkOrder, entity.BulkOrderInput]{
		collection: repository.CollectionBulkOrders,
		listLimit:  bulkListLimit,
		notFound:   domainerrors.ErrBulkOrderNotFound,
		blank:      entity.BlankBulkOrder,
		build:      entity.NewBulkOrder,
	})
}
