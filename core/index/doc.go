// Package index builds the secondary indices the normalization engine joins on.
//
// Every index is derived from a table.Store in a single linear pass and is read-only
// once built. The passes are independent, so Build runs them concurrently and waits
// for all of them, the same way the reconcile cache loads its sources.
//
// # Indices
//
//   - PartExists: part numbers present in parts.csv (membership only)
//   - InventoryParts: inventory id -> inventory part rows, source order kept
//   - InventoryMinifigs: inventory id -> inventory minifig rows, source order kept
//   - SetInventories: set number -> (inventory id, version) pairs, source order kept
//   - ThemeByID: theme id -> theme row, for parent lookups
//
// Lookups of absent keys return empty results; there are no error conditions
// beyond a cancelled context.
package index
