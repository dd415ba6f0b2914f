// Package catalog runs the read side of the pipeline: it reads the table
// directory, builds the indices and normalizes them into the domain model.
//
// Every command and the HTTP feature load the catalog through Load so that
// configuration (URL prefixes, version order, strict URLs) and diagnostic
// logging are applied the same way everywhere.
package catalog
