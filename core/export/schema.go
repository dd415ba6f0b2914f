package export

import (
	"fmt"
	"strings"

	"briq-utils/core/database"

	"gorm.io/gorm"
)

// TableReport is the schema check result of one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// SchemaReport is the schema check result of every model.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
}

// VerifySchema checks that every column of models exists in the database and,
// where a model declares an explicit type, that the types match.
func VerifySchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{Matched: true, Tables: make(map[string]TableReport, len(models))}

	for _, m := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", m, err)
		}
		table := stmt.Schema.Table

		columns, err := database.TableColumns(db, table)
		if err != nil {
			return nil, err
		}

		tr := TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "ok"}
		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			col, ok := columns[strings.ToLower(field.DBName)]
			if !ok {
				tr.MissingColumns = append(tr.MissingColumns, field.DBName)
				continue
			}
			want := strings.ToLower(field.TagSettings["TYPE"])
			if want != "" && col.Type != want {
				tr.TypeMismatches = append(tr.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", field.DBName, want, col.Type))
			}
		}

		if len(tr.MissingColumns) > 0 || len(tr.TypeMismatches) > 0 {
			tr.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tr
	}

	return report, nil
}
