// Package codegen turns catalog lookup tables into Swift source.
//
// Each lookup table (part categories, colors, themes) becomes one Swift enum
// with an Int raw value per row:
//
//	enum PartCategory: Int {
//	    case bricks = 11
//	    case technicBeams = 51
//	}
//
// Row names are turned into identifiers by Identifier: a fixed substitution table
// is applied first ("&" becomes "and", "#" becomes "number", punctuation becomes a
// space), then the words are joined in lower camel case. Output order follows the
// input rows and is deterministic, so regenerated files diff cleanly.
//
// Two rows that produce the same identifier are disambiguated by appending the
// row id to the later one. An identifier that would start with a digit gets a
// leading underscore, and Swift keywords are escaped with backticks.
package codegen
