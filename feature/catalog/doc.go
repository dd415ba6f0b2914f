// Package catalog exposes the normalized catalog over HTTP.
//
// The loaded catalog is kept in memory for the configured TTL; concurrent
// requests for an expired catalog share a single reload.
//
// # HTTP Endpoints
//
//   - GET /catalog : Counts of the loaded catalog and its diagnostics.
//   - GET /catalog/sets/:number : One set with its versions.
//   - GET /catalog/sets/:number/diff : Unique and common parts of the set's versions.
//   - GET /catalog/stats : Version distribution across all sets.
//   - GET /catalog/themes/depth : Maximum depth of the theme hierarchy.
//   - GET /catalog/validate : Referential integrity report of the tables.
//   - GET /catalog/assets : Asset mirror status (supports ?refresh=true).
//   - GET /catalog/assets/* : Presence of one cache-relative asset key.
//   - POST /catalog/reload : Drops the in-memory catalog and loads it again.
package catalog
