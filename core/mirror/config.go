package mirror

// Config holds configuration for the asset mirror.
type Config struct {
	// CacheDir is the root of the local asset cache.
	CacheDir string `mapstructure:"cache_dir" default:"cache"`
	// Workers is the maximum number of concurrent fetches.
	Workers int `mapstructure:"workers" default:"8"`
	// RatePerSecond caps fetches per second. Zero disables the limit.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"0"`
	// TimeoutSeconds bounds connection setup and time to first byte per fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Upload pushes cached files to object storage after fetching.
	Upload bool `mapstructure:"upload" default:"false"`
	// Prefix is prepended to object keys in the bucket.
	Prefix string `mapstructure:"prefix" default:""`
}
