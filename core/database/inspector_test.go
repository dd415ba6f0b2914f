package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE set_parts (id INTEGER PRIMARY KEY, part_number VARCHAR(64) NOT NULL, img_url TEXT)").Error
	require.NoError(t, err)

	columns, err := TableColumns(db, "set_parts")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, Column{Name: "id", Type: "integer", Nullable: true, PrimaryKey: true}, columns["id"])
	assert.Equal(t, "varchar(64)", columns["part_number"].Type)
	assert.False(t, columns["part_number"].Nullable)
	assert.True(t, columns["img_url"].Nullable)

	// PRAGMA table_info returns no rows for a missing table
	cols, err := TableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("Number", "VARCHAR(64)", "NO", "PRI", nil, "").
		AddRow("img_url", "varchar(255)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `sets`").WillReturnRows(rows)

	columns, err := TableColumns(db, "sets")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, Column{Name: "number", Type: "varchar(64)", PrimaryKey: true}, columns["number"])
	assert.True(t, columns["img_url"].Nullable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
