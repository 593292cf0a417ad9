package service

import "storefront/internal/domain/entity"

// SeedData is the initial catalogue loaded into an empty store.
type SeedData struct {
	Categories   []entity.Document
	Products     []entity.Document
	HeroSlides   []entity.Document
	Testimonials []entity.Document
	GiftBoxes    []entity.Document
	SiteSettings entity.Document
}

// SeedSource provides the fixture used to populate an empty store.
type SeedSource interface {
	Load() (*SeedData, error)
}
