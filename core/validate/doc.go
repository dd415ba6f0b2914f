// Package validate checks the loaded catalog tables for data-quality problems.
//
// It reports, and never repairs:
//
//   - duplicate primary keys (parts by number, sets by number, inventories by
//     id and by set/version, and so on);
//   - dangling foreign keys, found by reconciling the distinct values of each
//     child column against the keys of its parent table with core/reconcile;
//   - theme hierarchy defects (cycles and missing parents) found by
//     core/analyze.
//
// Normalization tolerates all of these except theme defects, so validate is the
// place to look when the generated model has fewer parts than expected.
package validate
