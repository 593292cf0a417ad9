package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ContentUsecase is the CRUD contract shared by every content collection.
// E is the stored entity, C its creation payload and U its partial update.
type ContentUsecase[E, C, U any] interface {
	// List returns the collection in insertion order, capped at the collection's list limit
	List(ctx context.Context) ([]*E, error)

	// Get returns one entity or the collection's not found error
	Get(ctx context.Context, id string) (*E, error)

	// Create assigns a new id, stores the entity and returns it
	Create(ctx context.Context, input *C) (*E, error)

	// Update sets the non-nil fields of patch and returns the entity as stored afterwards
	Update(ctx context.Context, id string, patch *U) (*E, error)

	// Delete removes the entity
	Delete(ctx context.Context, id string) error
}

type (
	CategoryUsecase    = ContentUsecase[entity.Category, entity.CategoryInput, entity.CategoryPatch]
	ProductUsecase     = ContentUsecase[entity.Product, entity.ProductInput, entity.ProductPatch]
	HeroSlideUsecase   = ContentUsecase[entity.HeroSlide, entity.HeroSlideInput, entity.HeroSlidePatch]
	TestimonialUsecase = ContentUsecase[entity.Testimonial, entity.TestimonialInput, entity.TestimonialPatch]
	GiftBoxUsecase     = ContentUsecase[entity.GiftBox, entity.GiftBoxInput, entity.GiftBoxPatch]
	BulkOrderUsecase   = ContentUsecase[entity.BulkOrder, entity.BulkOrderInput, entity.BulkOrderPatch]
)
