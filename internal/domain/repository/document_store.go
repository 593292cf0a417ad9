// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned when no document matches a filter.
var ErrDocumentNotFound = errors.New("document not found")

// Collection names.
const (
	CollectionCategories   = "categories"
	CollectionProducts     = "products"
	CollectionHeroSlides   = "hero_slides"
	CollectionTestimonials = "testimonials"
	CollectionGiftBoxes    = "gift_boxes"
	CollectionSiteSettings = "site_settings"
	CollectionBulkOrders   = "bulk_orders"
	CollectionNewsletter   = "newsletter_subscriptions"
	CollectionStatusChecks = "status_checks"
)

// Filter matches documents whose top-level fields equal every given value.
// An empty filter matches all documents.
type Filter map[string]any

// ByID matches the document with the given identifier.
func ByID(id string) Filter {
	return Filter{entity.FieldID: id}
}

// All matches every document of a collection.
func All() Filter {
	return Filter{}
}

// DocumentStore reads and writes schemaless documents in named collections.
// Returned documents never carry backend identifiers and come back in insertion order.
// Every write is persisted before the call returns.
type DocumentStore interface {
	// Find returns at most limit matching documents. A limit of 0 means no limit.
	Find(ctx context.Context, collection string, filter Filter, limit int64) ([]entity.Document, error)

	// FindOne returns the first matching document or ErrDocumentNotFound.
	FindOne(ctx context.Context, collection string, filter Filter) (entity.Document, error)

	// Count returns the number of matching documents.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// InsertOne stores a single document.
	InsertOne(ctx context.Context, collection string, doc entity.Document) error

	// InsertMany stores the documents in order.
	InsertMany(ctx context.Context, collection string, docs []entity.Document) error

	// UpdateOne sets the given top-level fields on the first matching document and
	// reports how many documents matched. With upsert, a missing document is created
	// from the filter and the fields.
	UpdateOne(ctx context.Context, collection string, filter Filter, fields entity.Document, upsert bool) (int64, error)

	// DeleteOne removes the first matching document and reports how many were removed.
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)

	// DeleteMany removes every matching document and reports how many were removed.
	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)

	// ReplaceOne overwrites the first matching document. With upsert, a missing
	// document is inserted.
	ReplaceOne(ctx context.Context, collection string, filter Filter, doc entity.Document, upsert bool) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
