package catalog

import (
	"context"
	"fmt"
	"time"

	"briq-utils/core/index"
	"briq-utils/core/model"
	"briq-utils/core/normalize"
	"briq-utils/core/table"

	"go.uber.org/zap"
)

// Catalog is one loaded snapshot: source tables, indices and the domain model.
type Catalog struct {
	Store       *table.Store
	Indices     *index.Indices
	Data        *model.Data
	Diagnostics []normalize.Diagnostic
	LoadedAt    time.Time
}

// Read reads the table directory without normalizing it.
func Read(ctx context.Context, cfg Config, logger *zap.Logger) (*table.Store, error) {
	start := time.Now()
	s, err := table.ReadAll(ctx, cfg.Workdir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables: %w", err)
	}
	logger.Info("Read catalog tables",
		zap.String("workdir", cfg.Workdir),
		zap.Int("sets", len(s.Sets)),
		zap.Int("parts", len(s.Parts)),
		zap.Int("inventory_parts", len(s.InventoryParts)),
		zap.Duration("elapsed", time.Since(start)))
	return s, nil
}

// Load reads, indexes and normalizes the catalog. Every dropped inventory row
// is logged at warn level.
func Load(ctx context.Context, cfg Config, logger *zap.Logger) (*Catalog, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	s, err := Read(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return FromStore(ctx, s, opts, logger)
}

// FromStore indexes and normalizes an already loaded store.
func FromStore(ctx context.Context, s *table.Store, opts normalize.Options, logger *zap.Logger) (*Catalog, error) {
	idx, err := index.Build(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to build indices: %w", err)
	}

	opts.OnDiagnostic = func(d normalize.Diagnostic) {
		logger.Warn("Ignoring inventory part",
			zap.String("set", d.SetNumber),
			zap.Uint16("version", d.Version),
			zap.Uint32("inventory_id", d.InventoryID),
			zap.String("part", d.PartNumber),
			zap.String("reason", "part does not exist"))
	}

	res, err := normalize.Normalize(s, idx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize catalog: %w", err)
	}

	return &Catalog{
		Store:       s,
		Indices:     idx,
		Data:        res.Data,
		Diagnostics: res.Diagnostics,
		LoadedAt:    time.Now(),
	}, nil
}
