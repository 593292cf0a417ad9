package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ThemeUsecase snapshots and restores settings and content collections
type ThemeUsecase interface {
	// Export reads settings and every content collection into one bundle. It never writes.
	Export(ctx context.Context) (*entity.ThemeBundle, error)

	// Import overwrites settings and replaces each non-empty collection of the bundle.
	// Collections are replaced one after another without a surrounding transaction.
	Import(ctx context.Context, bundle *entity.ThemeImport) (*entity.ImportResult, error)
}
