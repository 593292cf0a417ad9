package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStorage_WriteThenOpen(t *testing.T) {
	ctx := context.Background()
	storage := NewBucketStorage(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Write(ctx, "a.png", "image/png", strings.NewReader("png-bytes")))

	r, attrs, err := storage.Open(ctx, "a.png")
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, int64(len("png-bytes")), attrs.Size)
}

func TestBucketStorage_OpenMissing(t *testing.T) {
	storage := NewBucketStorage(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = storage.Close() })

	_, _, err := storage.Open(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}
