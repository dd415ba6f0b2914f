package mirror

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"briq-utils/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCached(t *testing.T, cache, rel, content string) {
	t.Helper()
	path := filepath.Join(cache, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestUploader_Upload(t *testing.T) {
	ctx := context.Background()
	cache := t.TempDir()
	writeCached(t, cache, "cdn.example/media/a.jpg", "aaaa")
	writeCached(t, cache, "cdn.example/media/b.jpg", "bb")

	client := new(mocks.Client)
	client.On("ListObjects", ctx, "assets", minio.ListObjectsOptions{Prefix: "mirror", Recursive: true}).
		Return(mocks.Objects(minio.ObjectInfo{Key: "mirror/cdn.example/media/b.jpg", Size: 2}))
	client.On("PutObject", ctx, "assets", "mirror/cdn.example/media/a.jpg", mock.Anything, int64(4),
		minio.PutObjectOptions{ContentType: "image/jpeg"}).
		Return(minio.UploadInfo{}, nil).Once()

	u := NewUploader(Config{CacheDir: cache, Workers: 2, Prefix: "mirror"}, client, "assets", zap.NewNop())
	report, err := u.Upload(ctx, []string{
		"https://cdn.example/media/a.jpg",
		"https://cdn.example/media/b.jpg",
		"https://cdn.example/media/c.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Uploaded)
	assert.Equal(t, 1, report.Present)
	assert.Equal(t, 1, report.NotCached)
	assert.Equal(t, int64(4), report.Bytes)
	client.AssertExpectations(t)
}
