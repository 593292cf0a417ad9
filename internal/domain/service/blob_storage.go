package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrBlobNotFound is returned when no blob is stored under a key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobAttributes describes a stored blob.
type BlobAttributes struct {
	ContentType string
	Size        int64
}

// BlobStorage is a key-value store for uploaded files.
type BlobStorage interface {
	// Write stores the full body under key.
	Write(ctx context.Context, key, contentType string, body io.Reader) error

	// Open returns a reader for the blob stored under key. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, *BlobAttributes, error)

	// Close releases the underlying bucket.
	Close() error
}
