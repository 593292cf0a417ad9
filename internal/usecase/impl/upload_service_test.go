package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/storage"
	mockService "storefront/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func uploadConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Upload.PublicPath = "/api/uploads/"

	return cfg
}

func TestUploadService_UploadThenOpen(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewBucketStorage(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = blobs.Close() })

	srv := NewUploadService(blobs, uploadConfig(), discardLogger()).(*uploadService)
	srv.newID = sequentialIDs("5f0c")

	uploaded, err := srv.Upload(ctx, &entity.Upload{
		FileName:    "cashews.PNG",
		ContentType: "image/png",
		Body:        strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)
	assert.Equal(t, &entity.UploadedFile{URL: "/api/uploads/5f0c.PNG", Filename: "5f0c.PNG"}, uploaded)

	stored, err := srv.Open(ctx, uploaded.Filename)
	require.NoError(t, err)
	defer stored.Body.Close()

	body, err := io.ReadAll(stored.Body)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(body))
	assert.Equal(t, "image/png", stored.ContentType)
}

func TestUploadService_Upload_DefaultExtension(t *testing.T) {
	blobs := storage.NewBucketStorage(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = blobs.Close() })

	srv := NewUploadService(blobs, uploadConfig(), discardLogger()).(*uploadService)
	srv.newID = sequentialIDs("abc")

	uploaded, err := srv.Upload(context.Background(), &entity.Upload{
		FileName:    "blob",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "abc.jpg", uploaded.Filename)
}

func TestUploadService_Upload_RejectsTypeBeforeWriting(t *testing.T) {
	// no expectations: any Write call fails the test
	blobs := mockService.NewMockBlobStorage(t)

	_, err := NewUploadService(blobs, uploadConfig(), discardLogger()).Upload(context.Background(), &entity.Upload{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Body:        strings.NewReader("hello"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
}

func TestUploadService_Upload_WriteFailure(t *testing.T) {
	blobs := mockService.NewMockBlobStorage(t)
	blobs.EXPECT().Write(mock.Anything, mock.Anything, "image/webp", mock.Anything).Return(errors.New("disk full"))

	_, err := NewUploadService(blobs, uploadConfig(), discardLogger()).Upload(context.Background(), &entity.Upload{
		FileName:    "a.webp",
		ContentType: "image/webp",
		Body:        strings.NewReader("webp"),
	})
	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.Contains(t, err.Error(), "disk full")
}

func TestUploadService_Open_NotFound(t *testing.T) {
	blobs := storage.NewBucketStorage(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = blobs.Close() })
	srv := NewUploadService(blobs, uploadConfig(), discardLogger())

	for _, name := range []string{"missing.jpg", "../config.yaml", "a/b.png", ""} {
		t.Run(name, func(t *testing.T) {
			_, err := srv.Open(context.Background(), name)
			assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
		})
	}
}
