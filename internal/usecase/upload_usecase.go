package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UploadUsecase stores and serves uploaded images
type UploadUsecase interface {
	// Upload validates the declared content type and stores the file under a generated name
	Upload(ctx context.Context, upload *entity.Upload) (*entity.UploadedFile, error)

	// Open returns a previously uploaded file. The caller closes its body.
	Open(ctx context.Context, filename string) (*entity.StoredFile, error)
}
