package static

import (
	"context"
	"io"
	"strings"
	"testing"

	"site-server/core/storage"
	"site-server/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var noSuchKey = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}

func TestLocalSource(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/site/new.html", []byte("<h1>hi</h1>"), 0o644))
	require.NoError(t, mem.MkdirAll("/site/docs", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/secret.txt", []byte("key"), 0o600))

	src := NewLocalSource(afero.NewBasePathFs(mem, "/site"))
	ctx := context.Background()

	t.Run("File", func(t *testing.T) {
		entry, err := src.Stat(ctx, "/new.html")
		require.NoError(t, err)
		assert.Equal(t, int64(11), entry.Size)
		assert.False(t, entry.IsDir)

		rc, err := src.Open(ctx, "/new.html")
		require.NoError(t, err)
		defer rc.Close()
		b, _ := io.ReadAll(rc)
		assert.Equal(t, "<h1>hi</h1>", string(b))
	})

	t.Run("Directory", func(t *testing.T) {
		entry, err := src.Stat(ctx, "/docs")
		require.NoError(t, err)
		assert.True(t, entry.IsDir)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := src.Stat(ctx, "/nope.html")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = src.Open(ctx, "/nope.html")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("EscapesRoot", func(t *testing.T) {
		_, err := src.Stat(ctx, "../secret.txt")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBucketSource_Stat(t *testing.T) {
	cfg := storage.Config{Bucket: "site", Prefix: "public"}
	ctx := context.Background()

	t.Run("Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "site", "public/new.html", mock.Anything).
			Return(minio.ObjectInfo{Key: "public/new.html", Size: 42}, nil)

		entry, err := NewBucketSource(client, cfg).Stat(ctx, "/new.html")
		require.NoError(t, err)
		assert.Equal(t, Entry{Name: "/new.html", Size: 42}, entry)
		client.AssertExpectations(t)
	})

	t.Run("FolderMarker", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "site", "public/docs", mock.Anything).
			Return(minio.ObjectInfo{}, noSuchKey)
		client.On("StatObject", mock.Anything, "site", "public/docs/", mock.Anything).
			Return(minio.ObjectInfo{Key: "public/docs/"}, nil)

		entry, err := NewBucketSource(client, cfg).Stat(ctx, "/docs")
		require.NoError(t, err)
		assert.True(t, entry.IsDir)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "site", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{}, noSuchKey)

		_, err := NewBucketSource(client, cfg).Stat(ctx, "/nope.css")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ProviderError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "site", "public/new.html", mock.Anything).
			Return(minio.ObjectInfo{}, assert.AnError)

		_, err := NewBucketSource(client, cfg).Stat(ctx, "/new.html")
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestBucketSource_Open(t *testing.T) {
	cfg := storage.Config{Bucket: "site"}
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "site", "new.html", mock.Anything).
		Return(io.NopCloser(strings.NewReader("hello")), nil)
	client.On("GetObject", mock.Anything, "site", "gone.html", mock.Anything).
		Return(nil, noSuchKey)

	src := NewBucketSource(client, cfg)

	rc, err := src.Open(context.Background(), "/new.html")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	assert.Equal(t, "hello", string(b))

	_, err = src.Open(context.Background(), "/gone.html")
	assert.ErrorIs(t, err, ErrNotFound)
}
