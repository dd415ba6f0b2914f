// Package table is the Table Store: it reads the catalog CSV export into flat,
// typed records, one slice per source table.
//
// # Files
//
// A catalog directory holds one CSV file per table, each with a header row:
//
//	colors.csv, inventories.csv, inventory-minifigs.csv, inventory-parts.csv,
//	minifigs.csv, parts.csv, part-categories.csv, sets.csv, themes.csv
//
// Columns are located by header name, so column order does not matter.
//
// # Errors
//
// Reading is all-or-nothing. A missing file, a row with the wrong number of fields,
// a value that does not parse, or an integer that overflows its declared width
// aborts the whole read with a *ParseError pointing at the table, line and column.
// No partial Store is ever returned.
//
// # Usage
//
//	store, err := table.ReadAll("data/")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(store.Sets))
package table
