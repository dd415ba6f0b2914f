// Package model defines the denormalized catalog: the document written to init.json
// and consumed by the analyzers, the exporter and the HTTP feature.
//
// The JSON field names of these types are a stable contract for downstream consumers.
// Values are built once by the normalize package and never mutated afterwards.
package model
