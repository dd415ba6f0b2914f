package catalog

import (
	"sync"
	"testing"

	pipeline "briq-utils/core/catalog"
	"briq-utils/core/mirror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CatalogIsShared(t *testing.T) {
	svc := NewService(pipeline.Config{Workdir: fixture, CacheTTLSeconds: 60}, mirror.Config{CacheDir: t.TempDir()}, nil, "", zap.NewNop())

	var wg sync.WaitGroup
	results := make([]*pipeline.Catalog, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cat, err := svc.Catalog(t.Context())
			assert.NoError(t, err)
			results[i] = cat
		}()
	}
	wg.Wait()

	require.NotNil(t, results[0])
	for _, cat := range results[1:] {
		assert.Same(t, results[0], cat)
	}
}

func TestService_ExpiredCatalogReloads(t *testing.T) {
	svc := NewService(pipeline.Config{Workdir: fixture}, mirror.Config{CacheDir: t.TempDir()}, nil, "", zap.NewNop())
	svc.ttl = 1

	first, err := svc.Catalog(t.Context())
	require.NoError(t, err)
	second, err := svc.Catalog(t.Context())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(pipeline.Config{Workdir: fixture}, mirror.Config{}, nil, "", zap.NewNop())
	assert.Equal(t, "catalog", feature.Name())
	assert.True(t, feature.IsEnabled())
}
