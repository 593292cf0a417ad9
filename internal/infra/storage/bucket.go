// Package storage keeps uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// bucketStorage implements the service.BlobStorage interface.
type bucketStorage struct {
	bucket *blob.Bucket
}

// NewBucketStorage wraps an opened bucket.
func NewBucketStorage(bucket *blob.Bucket) service.BlobStorage {
	return &bucketStorage{
		bucket: bucket,
	}
}

func (s *bucketStorage) Write(ctx context.Context, key, contentType string, body io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	// Close commits the blob.
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to commit %s", key)
	}

	return nil
}

func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, *service.BlobAttributes, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrBlobNotFound
		}

		return nil, nil, errors.Wrapf(err, "failed to open %s", key)
	}

	return r, &service.BlobAttributes{
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

func (s *bucketStorage) Close() error {
	return s.bucket.Close()
}

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by upload.bucketUrl and closes it on shutdown.
func New(params Params) (service.BlobStorage, error) {
	bucketURL := params.Config.Upload.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload bucket %s", bucketURL)
	}

	params.Logger.Info("Upload bucket opened", slog.String("bucket_url", bucketURL))

	storage := NewBucketStorage(bucket)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing upload bucket")

			return storage.Close()
		},
	})

	return storage, nil
}

// Module provides the blob storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
