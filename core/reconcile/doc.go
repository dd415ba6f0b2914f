// Package reconcile compares the key sets of several sources of truth.
//
// Each Source loads an index of items keyed by a string. The engine loads all
// sources concurrently, builds the union of their keys and returns one Result
// per key with the set of sources that have it and any field mismatches the
// Spec's Compare function reports. Results are sorted by key so output is
// deterministic.
//
// It backs two commands:
//
//   - validate: a foreign-key relation is a reconciliation of the distinct
//     values of the child column against the keys of the parent table. Keys
//     present only in the child side are dangling references.
//
//   - mirror status: the asset URLs referenced by the catalog are reconciled
//     against the files in the local cache and, when configured, the objects in
//     the storage bucket.
//
// # Plans
//
// ReconcileWithPlan adds a PlanSummary (per-source missing counts) and, when
// requested, purge actions for keys absent from the sources named by
// Spec.Required. ApplyPlan hands those actions to a Mutator only when the plan
// was confirmed and is not a dry run.
//
// # Cache
//
// GetOrBuildCache keeps loaded indices for Spec.CacheTTL and uses singleflight
// so concurrent HTTP requests for the same spec trigger one load.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Name:     "assets",
//	    Sources:  []reconcile.Source{catalogURLs, cacheFiles},
//	    Required: []string{"catalog"},
//	}
//	plan, err := reconcile.ReconcileWithPlan(ctx, spec, reconcile.Options{DoPurge: true})
package reconcile
