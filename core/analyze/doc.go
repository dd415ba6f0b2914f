// Package analyze derives statistics from the catalog.
//
// It holds three independent analyses:
//
//   - Theme hierarchy depth (MaxDepth, TreeDepth): the number of nodes on the
//     longest root-to-leaf path of the theme forest. A root theme has depth 1 and
//     an empty forest has depth 0. Parent links that loop back on themselves are
//     reported as a *CycleError instead of recursing forever.
//
//   - Version diffs (Diff, DiffSet): for a set with several inventory versions,
//     the parts every version shares and, per version, the parts outside that
//     shared set. Parts are compared with model.SetPart.Key, so the same part
//     number in another quantity is a different entry. Output is sorted with
//     model.SortSetParts.
//
//   - Version statistics (Stats): how many sets have more than one and more than
//     two versions, as counts and as a share of all sets.
//
// All functions are pure. They read their inputs and never modify them.
package analyze
