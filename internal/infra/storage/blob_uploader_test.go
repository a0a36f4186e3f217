package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"foodies/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestBlobUploader_Upload(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := newBlobUploader(bucket, "https://cdn.example.com/media/")
	ctx := context.Background()

	url, err := uploader.Upload(ctx, "avatars/42.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/avatars/42.png", url)

	data, err := bucket.ReadAll(ctx, "avatars/42.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "avatars/42.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, uploadCacheControl, attrs.CacheControl)
}

func TestBlobUploader_EscapesKeySegments(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := newBlobUploader(bucket, "https://cdn.example.com")

	url, err := uploader.Upload(context.Background(), "recipes/pie with cream.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/recipes/pie%20with%20cream.jpg", url)
}

func TestBlobUploader_ReadFailureLeavesNoObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := newBlobUploader(bucket, "https://cdn.example.com")
	ctx := context.Background()

	_, err := uploader.Upload(ctx, "avatars/broken.png", "image/png", failingReader{})
	require.Error(t, err)

	exists, err := bucket.Exists(ctx, "avatars/broken.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOpenBucket_URLDriver(t *testing.T) {
	bucket, err := openBucket(context.Background(), &config.StorageConfig{Driver: "url", BucketURL: "mem://"})
	require.NoError(t, err)
	require.NoError(t, bucket.Close())

	_, err = openBucket(context.Background(), &config.StorageConfig{Driver: "url", BucketURL: "unknown://bucket"})
	assert.Error(t, err)
}
