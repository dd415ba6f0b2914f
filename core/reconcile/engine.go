package reconcile

import (
	"context"
	"sort"
)

// ReconcileAll performs a full reconciliation across all keys.
// It loads all sources, computes the union of keys, and returns a result for
// each key sorted by key.
func ReconcileAll(ctx context.Context, spec *Spec) ([]Result, error) {
	cache, err := BuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return reconcileFromCache(cache, spec), nil
}

// ReconcileOne reconciles a single key. With a CacheTTL it reuses cached
// indices; otherwise it loads every source.
func ReconcileOne(ctx context.Context, spec *Spec, key string) (*Result, error) {
	var (
		cache *Cache
		err   error
	)
	if spec.CacheTTL > 0 {
		cache, err = GetOrBuildCache(ctx, spec)
	} else {
		cache, err = BuildCache(ctx, spec)
	}
	if err != nil {
		return nil, err
	}

	result := buildResult(key, cache, spec)
	return &result, nil
}

func reconcileFromCache(cache *Cache, spec *Spec) []Result {
	union := buildUnion(cache)

	results := make([]Result, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, cache, spec))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

// buildUnion creates a union of the keys of every source.
func buildUnion(cache *Cache) map[string]struct{} {
	union := make(map[string]struct{})
	for _, index := range cache.Indices {
		for key := range index {
			union[key] = struct{}{}
		}
	}
	return union
}

// buildResult creates a Result for a single key.
func buildResult(key string, cache *Cache, spec *Spec) Result {
	result := Result{
		ID:       key,
		Present:  make(map[string]bool, len(spec.Sources)),
		Mismatch: []string{},
	}

	items := make(map[string]Item, len(spec.Sources))
	for _, src := range spec.Sources {
		item, ok := cache.Indices[src.Name()][key]
		result.Present[src.Name()] = ok
		if ok {
			items[src.Name()] = item
		}
	}

	if spec.Compare != nil && len(items) == len(spec.Sources) {
		if m := spec.Compare(key, items); len(m) > 0 {
			result.Mismatch = m
		}
	}
	return result
}
