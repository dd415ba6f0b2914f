package mirror

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"briq-utils/core/reconcile"
	"briq-utils/core/storage"
)

// Source names used in status results.
const (
	SourceCatalog = "catalog"
	SourceCache   = "cache"
	SourceStorage = "storage"
)

// StatusSpec builds the reconciliation of catalog URLs against the cache and,
// when client is not nil, the bucket. Keys are cache-relative paths.
func StatusSpec(cfg Config, urls []string, client storage.Client, bucket string, ttl time.Duration) *reconcile.Spec {
	sources := []reconcile.Source{
		reconcile.NewSource(SourceCatalog, func(context.Context) (map[string]reconcile.Item, error) {
			index := make(map[string]reconcile.Item, len(urls))
			for _, url := range urls {
				if rel, err := RelativePath(url); err == nil {
					index[rel] = url
				}
			}
			return index, nil
		}),
		reconcile.NewSource(SourceCache, func(ctx context.Context) (map[string]reconcile.Item, error) {
			return cacheIndex(ctx, cfg.CacheDir)
		}),
	}

	if client != nil {
		sources = append(sources, reconcile.NewSource(SourceStorage, func(ctx context.Context) (map[string]reconcile.Item, error) {
			keys, err := storage.ListKeys(ctx, client, bucket, cfg.Prefix)
			if err != nil {
				return nil, err
			}
			index := make(map[string]reconcile.Item, len(keys))
			for key, size := range keys {
				rel := key
				if cfg.Prefix != "" {
					rel = strings.TrimPrefix(strings.TrimPrefix(key, cfg.Prefix), "/")
				}
				index[rel] = size
			}
			return index, nil
		}))
	}

	return &reconcile.Spec{
		Name:     "mirror:" + cfg.CacheDir + ":" + bucket + ":" + cfg.Prefix,
		Sources:  sources,
		Required: []string{SourceCatalog},
		Compare:  compareSizes,
		CacheTTL: ttl,
	}
}

// compareSizes reports a cached file whose size differs from its object.
func compareSizes(_ string, items map[string]reconcile.Item) []string {
	cached, ok1 := items[SourceCache].(int64)
	stored, ok2 := items[SourceStorage].(int64)
	if !ok1 || !ok2 || cached == stored {
		return nil
	}
	return []string{fmt.Sprintf("size: cache=%d storage=%d", cached, stored)}
}

// cacheIndex maps every complete file under dir to its size.
func cacheIndex(ctx context.Context, dir string) (map[string]reconcile.Item, error) {
	index := make(map[string]reconcile.Item)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir && os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || strings.HasSuffix(p, partExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		index[filepath.ToSlash(rel)] = info.Size()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cache %s: %w", dir, err)
	}
	return index, nil
}

// Pruner removes orphaned entries from the cache and the bucket.
type Pruner struct {
	cfg    Config
	client storage.Client
	bucket string
}

// NewPruner creates a reconcile.Mutator for status plans. client may be nil
// when the plan has no storage source.
func NewPruner(cfg Config, client storage.Client, bucket string) *Pruner {
	return &Pruner{cfg: cfg, client: client, bucket: bucket}
}

// Apply executes a purge action.
func (p *Pruner) Apply(ctx context.Context, action reconcile.Action) error {
	return p.ApplyBatch(ctx, []reconcile.Action{action})
}

// ApplyBatch removes cached files one by one and bucket objects in
// multi-object delete requests. Every action is attempted; the failures are
// joined into the returned error.
func (p *Pruner) ApplyBatch(ctx context.Context, actions []reconcile.Action) error {
	var (
		errs []error
		keys []string
	)
	for _, action := range actions {
		if action.Type != reconcile.ActionPurge {
			errs = append(errs, fmt.Errorf("unsupported action %s", action.Type))
			continue
		}
		switch action.Source {
		case SourceCache:
			if err := p.removeCached(action.Key); err != nil {
				errs = append(errs, err)
			}
		case SourceStorage:
			keys = append(keys, ObjectKey(p.cfg.Prefix, action.Key))
		default:
			errs = append(errs, fmt.Errorf("cannot purge from source %s", action.Source))
		}
	}

	if len(keys) > 0 {
		if p.client == nil {
			errs = append(errs, fmt.Errorf("no storage client configured"))
		} else if err := storage.RemoveKeys(ctx, p.client, p.bucket, keys); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Pruner) removeCached(key string) error {
	path, err := CachePath(p.cfg.CacheDir, "//"+key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
