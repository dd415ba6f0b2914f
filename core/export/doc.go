// Package export writes the normalized catalog into a SQL database with GORM.
//
// The domain model is flattened into six tables:
//
//	parts         (number)
//	minifigs      (number)
//	sets          (number)
//	set_versions  (id, set_number, version, position)
//	set_parts     (id, set_version_id, ...)
//	set_minifigs  (id, set_version_id, ...)
//
// plus export_runs, one row per export identified by a UUID. position keeps the
// order of versions within a set, which is not necessarily version order.
//
// Every export is a full rebuild inside one transaction: the catalog tables are
// cleared and refilled in batches, so readers never see a half-written catalog.
// After migrating, VerifySchema compares the live columns with the models using
// core/database's inspector.
package export
