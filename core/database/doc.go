// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either a MySQL or a SQLite connection from the
// application's configuration. The export command writes the catalog through
// this connection.
//
// # Connect
//
// Connect builds the driver DSN, applies pool settings and pings the database
// before returning, so a misconfigured database fails at start-up.
//
// # Schema Inspection
//
// TableColumns lists the columns of a table (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). core/export uses it to verify that the migrated tables
// match its models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.TableColumns(db, "set_parts")
package database
