package catalog

import (
	"briq-utils/core/model"
	"briq-utils/core/normalize"
)

// Config holds configuration for reading and normalizing the catalog.
type Config struct {
	// Workdir is the directory holding the table files.
	Workdir string `mapstructure:"workdir" default:"."`
	// Output is the directory generated files are written to. Empty means Workdir.
	Output string `mapstructure:"output" default:""`
	// SourcePrefix is the asset URL prefix found in the tables.
	SourcePrefix string `mapstructure:"source_prefix" default:"https://cdn.rebrickable.com/media"`
	// TargetPrefix replaces SourcePrefix in the model.
	TargetPrefix string `mapstructure:"target_prefix" default:"https://briq-assets.spe.quebec"`
	// VersionOrder is "source" or "numeric".
	VersionOrder string `mapstructure:"version_order" default:"source"`
	// StrictURLs fails the run on URLs outside SourcePrefix.
	StrictURLs bool `mapstructure:"strict_urls" default:"false"`
	// PackSets lists set numbers flagged as multi-set packs.
	PackSets []string `mapstructure:"pack_sets" default:""`
	// UnreleasedSets lists set numbers flagged as never released.
	UnreleasedSets []string `mapstructure:"unreleased_sets" default:""`
	// AccessorySets lists set numbers flagged as accessory sets.
	AccessorySets []string `mapstructure:"accessory_sets" default:""`
	// CacheTTLSeconds is how long the HTTP feature keeps a loaded catalog.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// OutputDir returns Output, or Workdir when Output is empty.
func (c Config) OutputDir() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Workdir
}

// Options converts the configuration into normalization options.
func (c Config) Options() (normalize.Options, error) {
	order, err := normalize.ParseVersionOrder(c.VersionOrder)
	if err != nil {
		return normalize.Options{}, err
	}
	opts := normalize.DefaultOptions()
	if c.SourcePrefix != "" {
		opts.SourcePrefix = c.SourcePrefix
	}
	if c.TargetPrefix != "" {
		opts.TargetPrefix = c.TargetPrefix
	}
	opts.VersionOrder = order
	opts.StrictURLs = c.StrictURLs
	opts.Classifier = model.NewClassifier(c.PackSets, c.UnreleasedSets, c.AccessorySets)
	return opts, nil
}
