package export

import (
	"context"
	"fmt"
	"time"

	"briq-utils/core/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize is the number of rows per INSERT.
const DefaultBatchSize = 500

// Run describes a finished export.
type Run struct {
	ID       string        `json:"id"`
	Sets     int           `json:"sets"`
	Versions int           `json:"versions"`
	Parts    int           `json:"parts"`
	Minifigs int           `json:"minifigs"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Exporter writes catalogs into a database.
type Exporter struct {
	db        *gorm.DB
	logger    *zap.Logger
	batchSize int
}

// New creates an Exporter. A non-positive batchSize means DefaultBatchSize.
func New(db *gorm.DB, logger *zap.Logger, batchSize int) *Exporter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Exporter{db: db, logger: logger, batchSize: batchSize}
}

// Migrate creates or updates the tables and verifies the resulting schema.
func (e *Exporter) Migrate(ctx context.Context) error {
	db := e.db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	report, err := VerifySchema(db, Models()...)
	if err != nil {
		return err
	}
	if !report.Matched {
		for table, tr := range report.Tables {
			if tr.Status != "ok" {
				e.logger.Error("Schema mismatch",
					zap.String("table", table),
					zap.Strings("missing", tr.MissingColumns),
					zap.Strings("type_mismatches", tr.TypeMismatches))
			}
		}
		return fmt.Errorf("schema does not match models")
	}
	return nil
}

// Export replaces the catalog tables with data in a single transaction.
func (e *Exporter) Export(ctx context.Context, data *model.Data) (*Run, error) {
	start := time.Now()
	run := &Run{ID: uuid.NewString()}

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range catalogModels {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", m, err)
			}
		}

		if err := insert(tx, partRows(data.Parts), e.batchSize); err != nil {
			return err
		}
		if err := insert(tx, minifigRows(data.Minifigs), e.batchSize); err != nil {
			return err
		}
		if err := insert(tx, setRows(data.Sets), e.batchSize); err != nil {
			return err
		}

		versions := versionRows(data.Sets)
		if err := insert(tx, versions, e.batchSize); err != nil {
			return err
		}

		parts, minifigs := contentRows(data.Sets, versions)
		if err := insert(tx, parts, e.batchSize); err != nil {
			return err
		}
		if err := insert(tx, minifigs, e.batchSize); err != nil {
			return err
		}

		run.Sets = len(data.Sets)
		run.Versions = len(versions)
		run.Parts = len(parts)
		run.Minifigs = len(minifigs)

		return tx.Create(&RunRow{
			ID:         run.ID,
			StartedAt:  start,
			FinishedAt: time.Now(),
			Sets:       run.Sets,
			Versions:   run.Versions,
			Parts:      run.Parts,
			Minifigs:   run.Minifigs,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("export %s failed: %w", run.ID, err)
	}

	run.Elapsed = time.Since(start)
	e.logger.Info("Exported catalog",
		zap.String("run_id", run.ID),
		zap.Int("sets", run.Sets),
		zap.Int("versions", run.Versions),
		zap.Int("set_parts", run.Parts),
		zap.Duration("elapsed", run.Elapsed))
	return run, nil
}

// insert writes rows in batches and fills generated IDs back into rows.
func insert[T any](tx *gorm.DB, rows []T, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&rows, batchSize).Error; err != nil {
		return fmt.Errorf("failed to insert %T: %w", rows, err)
	}
	return nil
}

func partRows(parts []model.Part) []PartRow {
	rows := make([]PartRow, len(parts))
	for i, p := range parts {
		rows[i] = PartRow{Number: p.Number, Name: p.Name, PartCategoryID: p.PartCategoryID, Material: p.Material}
	}
	return rows
}

func minifigRows(minifigs []model.Minifig) []MinifigRow {
	rows := make([]MinifigRow, len(minifigs))
	for i, m := range minifigs {
		rows[i] = MinifigRow{Number: m.Number, Name: m.Name, PartsCount: m.PartsCount, ImgURL: m.ImgURL}
	}
	return rows
}

func setRows(sets []model.Set) []SetRow {
	rows := make([]SetRow, len(sets))
	for i, s := range sets {
		rows[i] = SetRow{
			Number:        s.Number,
			Name:          s.Name,
			Year:          s.Year,
			ThemeID:       s.ThemeID,
			PartsCount:    s.PartsCount,
			ImgURL:        s.ImgURL,
			IsPack:        s.IsPack,
			IsUnreleased:  s.IsUnreleased,
			IsAccessories: s.IsAccessories,
		}
	}
	return rows
}

// versionRows flattens every version in set order. IDs are filled in on insert.
func versionRows(sets []model.Set) []SetVersionRow {
	var rows []SetVersionRow
	for _, s := range sets {
		for pos, v := range s.Versions {
			rows = append(rows, SetVersionRow{SetNumber: s.Number, Version: v.Version, Position: pos})
		}
	}
	return rows
}

// contentRows flattens parts and minifigs. versions must be the inserted result
// of versionRows(sets) so that its order matches the walk below.
func contentRows(sets []model.Set, versions []SetVersionRow) ([]SetPartRow, []SetMinifigRow) {
	var (
		parts    []SetPartRow
		minifigs []SetMinifigRow
		i        int
	)
	for _, s := range sets {
		for _, v := range s.Versions {
			id := versions[i].ID
			i++
			for _, p := range v.Parts {
				parts = append(parts, SetPartRow{
					SetVersionID: id,
					PartNumber:   p.Number,
					ColorID:      p.ColorID,
					Quantity:     p.Quantity,
					IsSpare:      p.IsSpare,
					ImgURL:       p.ImgURL,
				})
			}
			for _, m := range v.Minifigs {
				minifigs = append(minifigs, SetMinifigRow{SetVersionID: id, MinifigNumber: m.Number, Quantity: m.Quantity})
			}
		}
	}
	return parts, minifigs
}
