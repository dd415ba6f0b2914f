package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column describes one column of an existing table. Names and types are
// lowercased so they compare with gorm tags regardless of dialect spelling.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
}

// showColumn is a row of MySQL's SHOW COLUMNS.
type showColumn struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// pragmaColumn is a row of SQLite's PRAGMA table_info.
type pragmaColumn struct {
	Cid       int
	Name      string
	Type      string
	Notnull   int
	DfltValue *string
	Pk        int
}

// TableColumns returns the columns of table keyed by lowercased name. A table
// that does not exist yields an empty map on SQLite and an error on MySQL.
func TableColumns(db *gorm.DB, table string) (map[string]Column, error) {
	columns := make(map[string]Column)
	add := func(c Column) {
		c.Name = strings.ToLower(c.Name)
		c.Type = strings.ToLower(c.Type)
		columns[c.Name] = c
	}

	if db.Dialector.Name() == "sqlite" {
		var rows []pragmaColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, r := range rows {
			add(Column{Name: r.Name, Type: r.Type, Nullable: r.Notnull == 0, PrimaryKey: r.Pk > 0})
		}
		return columns, nil
	}

	// SHOW COLUMNS keeps the declared type strings, e.g. varchar(64)
	var rows []showColumn
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	for _, r := range rows {
		add(Column{Name: r.Field, Type: r.Type, Nullable: r.Null == "YES", PrimaryKey: r.Key == "PRI"})
	}
	return columns, nil
}
