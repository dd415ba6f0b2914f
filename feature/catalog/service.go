package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"briq-utils/core/analyze"
	pipeline "briq-utils/core/catalog"
	"briq-utils/core/mirror"
	"briq-utils/core/model"
	"briq-utils/core/reconcile"
	"briq-utils/core/storage"
	"briq-utils/core/validate"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrSetNotFound is returned when no set has the requested number.
var ErrSetNotFound = errors.New("set not found")

// ErrAssetNotFound is returned when a key is in neither the catalog, the cache
// nor the bucket.
var ErrAssetNotFound = errors.New("asset not found")

// Service serves catalog queries from an in-memory snapshot.
type Service struct {
	cfg       pipeline.Config
	mirrorCfg mirror.Config
	client    storage.Client
	bucket    string
	logger    *zap.Logger
	ttl       time.Duration

	group   singleflight.Group
	mu      sync.RWMutex
	current *pipeline.Catalog
}

// NewService creates a catalog service. client may be nil, in which case the
// asset status only compares the catalog with the local cache.
func NewService(cfg pipeline.Config, mirrorCfg mirror.Config, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		cfg:       cfg,
		mirrorCfg: mirrorCfg,
		client:    client,
		bucket:    bucket,
		logger:    logger,
		ttl:       time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

// Catalog returns the loaded catalog, loading it when absent or expired.
func (s *Service) Catalog(ctx context.Context) (*pipeline.Catalog, error) {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur != nil && !s.expired(cur) {
		return cur, nil
	}

	v, err, _ := s.group.Do("catalog", func() (interface{}, error) {
		s.mu.RLock()
		cur := s.current
		s.mu.RUnlock()
		if cur != nil && !s.expired(cur) {
			return cur, nil
		}

		loaded, err := pipeline.Load(context.WithoutCancel(ctx), s.cfg, s.logger)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.current = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pipeline.Catalog), nil
}

func (s *Service) expired(c *pipeline.Catalog) bool {
	return s.ttl > 0 && time.Since(c.LoadedAt) > s.ttl
}

// Reload drops the in-memory catalog and loads it again.
func (s *Service) Reload(ctx context.Context) (*pipeline.Catalog, error) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.Catalog(ctx)
}

// Set returns the set with the given number.
func (s *Service) Set(ctx context.Context, number string) (model.Set, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return model.Set{}, err
	}
	set, ok := cat.Data.FindSet(number)
	if !ok {
		return model.Set{}, ErrSetNotFound
	}
	return set, nil
}

// SetDiff returns the version diff of the set with the given number.
func (s *Service) SetDiff(ctx context.Context, number string) (analyze.VersionDiff, error) {
	set, err := s.Set(ctx, number)
	if err != nil {
		return analyze.VersionDiff{}, err
	}
	return analyze.DiffSet(set), nil
}

// Stats returns the version distribution of all sets.
func (s *Service) Stats(ctx context.Context) (analyze.VersionStats, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return analyze.VersionStats{}, err
	}
	return analyze.Stats(cat.Data.Sets), nil
}

// ThemeDepth returns the maximum depth of the theme hierarchy.
func (s *Service) ThemeDepth(ctx context.Context) (int, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return 0, err
	}
	return analyze.MaxDepth(cat.Store.Themes)
}

// Validate checks the referential integrity of the loaded tables.
func (s *Service) Validate(ctx context.Context) (*validate.Report, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return validate.Validate(ctx, cat.Store)
}

// AssetStatus reconciles catalog URLs with the asset cache and the bucket.
// Purge actions are planned but never applied.
func (s *Service) AssetStatus(ctx context.Context, refresh bool) (*reconcile.Plan, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	spec := mirror.StatusSpec(s.mirrorCfg, mirror.CollectURLs(cat.Store), s.client, s.bucket, s.ttl)
	if refresh {
		reconcile.InvalidateCache(spec)
	}
	return reconcile.ReconcileWithPlan(ctx, spec, reconcile.Options{DoPurge: true, DryRun: true})
}

// Asset reconciles a single cache-relative key, e.g.
// cdn.rebrickable.com/media/sets/1000-1.jpg, and shares the cached indices of
// AssetStatus.
func (s *Service) Asset(ctx context.Context, key string) (*reconcile.Result, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	spec := mirror.StatusSpec(s.mirrorCfg, mirror.CollectURLs(cat.Store), s.client, s.bucket, s.ttl)
	result, err := reconcile.ReconcileOne(ctx, spec, key)
	if err != nil {
		return nil, err
	}
	for _, present := range result.Present {
		if present {
			return result, nil
		}
	}
	return nil, ErrAssetNotFound
}
