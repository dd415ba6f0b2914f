package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache holds the loaded indices of a spec.
type Cache struct {
	// Indices maps each source name to its loaded index.
	Indices map[string]map[string]Item

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *Cache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all caches keyed by spec cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*Cache
	sf     singleflight.Group
}

var globalCacheStore = &cacheStore{
	caches: make(map[string]*Cache),
}

// BuildCache loads every source of spec concurrently.
// This function does NOT store the cache; use GetOrBuildCache for that.
func BuildCache(ctx context.Context, spec *Spec) (*Cache, error) {
	var (
		indices = make([]map[string]Item, len(spec.Sources))
		errs    = make([]error, len(spec.Sources))
		wg      sync.WaitGroup
	)

	wg.Add(len(spec.Sources))
	for i, src := range spec.Sources {
		go func() {
			defer wg.Done()
			indices[i], errs[i] = src.Load(ctx)
		}()
	}
	wg.Wait()

	cache := &Cache{
		Indices: make(map[string]map[string]Item, len(spec.Sources)),
		Built:   time.Now(),
		TTL:     spec.CacheTTL,
	}
	for i, src := range spec.Sources {
		if errs[i] != nil {
			return nil, fmt.Errorf("failed to load %s: %w", src.Name(), errs[i])
		}
		if _, dup := cache.Indices[src.Name()]; dup {
			return nil, fmt.Errorf("duplicate source name %q", src.Name())
		}
		cache.Indices[src.Name()] = indices[i]
	}
	return cache, nil
}

// GetOrBuildCache retrieves a cache for the given spec from the store,
// or builds a new one if it doesn't exist or has expired.
// Uses singleflight to prevent cache stampedes.
func GetOrBuildCache(ctx context.Context, spec *Spec) (*Cache, error) {
	cacheKey := spec.CacheKey()

	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[cacheKey]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache, nil
	}

	result, err, _ := globalCacheStore.sf.Do(cacheKey, func() (interface{}, error) {
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[cacheKey]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		newCache, err := BuildCache(ctx, spec)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[cacheKey] = newCache
		globalCacheStore.mu.Unlock()

		return newCache, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Cache), nil
}

// InvalidateCache removes the cache for the given spec from the store.
func InvalidateCache(spec *Spec) {
	cacheKey := spec.CacheKey()
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, cacheKey)
	globalCacheStore.mu.Unlock()
}
