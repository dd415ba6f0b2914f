// Package normalize is the relational join engine. It turns the flat tables of a
// table.Store into the model.Data hierarchy:
//
//	Set -> ordered SetVersions -> {SetParts, SetMinifigs}
//
// Parts and minifigs are copied with their image URL rewritten to the asset host.
// Each set row becomes one Set; each inventory of that set becomes one SetVersion,
// in the order the inventories appear in inventories.csv unless numeric ordering is
// requested. Inventory part rows that reference a part missing from parts.csv are
// dropped and reported as a Diagnostic; the run continues.
//
// Normalize either returns a complete model or an error. It never returns a partial
// model.
package normalize
