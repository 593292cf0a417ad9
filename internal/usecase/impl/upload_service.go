package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type uploadService struct {
	storage    service.BlobStorage
	logger     *slog.Logger
	publicPath string
	newID      func() string
}

// NewUploadService creates the image upload service
func NewUploadService(storage service.BlobStorage, cfg *config.Config, logger *slog.Logger) usecase.UploadUsecase {
	return &uploadService{
		storage:    storage,
		logger:     logger,
		publicPath: strings.TrimRight(cfg.Upload.PublicPath, "/"),
		newID:      entity.NewID,
	}
}

// Upload rejects undeclared image types before anything is written
func (srv *uploadService) Upload(ctx context.Context, upload *entity.Upload) (*entity.UploadedFile, error) {
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if !slices.Contains(entity.AllowedImageTypes, contentType) {
		return nil, domainerrors.ErrInvalidFileType
	}

	filename := fmt.Sprintf("%s.%s", srv.newID(), upload.Extension())

	if err := srv.storage.Write(ctx, filename, contentType, upload.Body); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Upload error",
			slog.String("filename", filename),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUploadFailed.WithCause(err)
	}

	return &entity.UploadedFile{
		URL:      srv.publicPath + "/" + filename,
		Filename: filename,
	}, nil
}

// Open serves a stored upload. Names that could escape the bucket are treated as missing.
func (srv *uploadService) Open(ctx context.Context, filename string) (*entity.StoredFile, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return nil, domainerrors.ErrFileNotFound
	}

	body, attrs, err := srv.storage.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, fmt.Errorf("failed to open upload: %w", err)
	}

	contentType := attrs.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(filename))
	}

	return &entity.StoredFile{
		ContentType: contentType,
		Size:        attrs.Size,
		Body:        body,
	}, nil
}
