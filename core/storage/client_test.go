package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"briq-utils/core/storage"
	"briq-utils/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		for _, endpoint := range []string{"http://localhost:9000", "https://s3.amazonaws.com"} {
			client, err := storage.NewClient(storage.Config{Endpoint: endpoint, AccessKey: "k", SecretKey: "s"})
			assert.NoError(t, err, endpoint)
			assert.NotNil(t, client, endpoint)
		}
	})
}

func TestNewTransport(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.NewTransport(0).ResponseHeaderTimeout)
	assert.Equal(t, 5*time.Second, storage.NewTransport(5*time.Second).TLSHandshakeTimeout)
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "assets").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "assets", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "assets").Return(false, nil)
		m.On("MakeBucket", ctx, "assets", minio.MakeBucketOptions{Region: "eu"}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "assets", "eu"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "assets").Return(false, errors.New("denied"))

		assert.Error(t, storage.EnsureBucket(ctx, m, "assets", ""))
	})
}

func TestListKeys(t *testing.T) {
	ctx := context.Background()

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "media/a.jpg", Size: 10}
	ch <- minio.ObjectInfo{Key: "media/b.jpg", Size: 20}
	close(ch)

	m := new(mocks.Client)
	m.On("ListObjects", ctx, "assets", minio.ListObjectsOptions{Prefix: "media/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))

	keys, err := storage.ListKeys(ctx, m, "assets", "media/")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"media/a.jpg": 10, "media/b.jpg": 20}, keys)
}

func TestListKeys_Error(t *testing.T) {
	ctx := context.Background()

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("boom")}
	close(ch)

	m := new(mocks.Client)
	m.On("ListObjects", ctx, "assets", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := storage.ListKeys(ctx, m, "assets", "")
	assert.Error(t, err)
}

func TestRemoveKeys(t *testing.T) {
	ctx := context.Background()

	m := new(mocks.Client)
	m.On("RemoveObjects", ctx, "assets", []string{"media/a.jpg", "media/b.jpg"}, minio.RemoveObjectsOptions{}).
		Return(mocks.RemoveErrors())

	require.NoError(t, storage.RemoveKeys(ctx, m, "assets", []string{"media/a.jpg", "media/b.jpg"}))
	m.AssertExpectations(t)

	// Nothing to remove means no request.
	require.NoError(t, storage.RemoveKeys(ctx, m, "assets", nil))
	m.AssertNumberOfCalls(t, "RemoveObjects", 1)
}

func TestRemoveKeys_PartialFailure(t *testing.T) {
	ctx := context.Background()

	m := new(mocks.Client)
	m.On("RemoveObjects", ctx, "assets", mock.Anything, mock.Anything).
		Return(mocks.RemoveErrors(minio.RemoveObjectError{ObjectName: "media/b.jpg", Err: errors.New("access denied")}))

	err := storage.RemoveKeys(ctx, m, "assets", []string{"media/a.jpg", "media/b.jpg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media/b.jpg")
	assert.NotContains(t, err.Error(), "media/a.jpg")
}
