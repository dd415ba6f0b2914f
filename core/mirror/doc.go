// Package mirror copies the asset images referenced by the catalog into a local
// cache directory and, optionally, into an object storage bucket.
//
// # Cache layout
//
// The cache path of a URL is the cache root joined with everything after "//":
//
//	https://cdn.rebrickable.com/media/parts/3001.jpg
//	-> <cache>/cdn.rebrickable.com/media/parts/3001.jpg
//
// A file that already exists is never fetched again. Downloads are written to
// "<path>.part" and renamed into place only after the whole body arrived, so a
// cached file is always complete.
//
// # Concurrency
//
// URLs are deduplicated and sorted, then fetched by a bounded errgroup of
// Config.Workers goroutines. An optional rate limiter caps requests per second.
// A failed fetch is logged and counted in the Report; it never stops the batch.
// Cancelling the context stops scheduling and waits for in-flight fetches.
//
// # Storage
//
// Upload pushes cached files to a bucket under Config.Prefix, skipping keys
// already listed in the bucket. Status reconciles catalog URLs against the cache
// and the bucket through core/reconcile and can purge orphaned entries.
package mirror
