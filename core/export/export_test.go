package export

import (
	"context"
	"testing"

	"briq-utils/core/database"
	"briq-utils/core/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func sampleData() *model.Data {
	return &model.Data{
		Parts: []model.Part{
			{Number: "3001", Name: "Brick 2 x 4", PartCategoryID: 11, Material: "Plastic"},
		},
		Minifigs: []model.Minifig{
			{Number: "fig-1", Name: "Spaceman", PartsCount: 4, ImgURL: strPtr("https://assets/fig-1.jpg")},
		},
		Sets: []model.Set{
			{
				Number: "1000-1", Name: "Cruiser", Year: 1979, ThemeID: 2, PartsCount: 6,
				Versions: []model.SetVersion{
					{
						Version:  2,
						Parts:    []model.SetPart{{Number: "3001", ColorID: 0, Quantity: 4}},
						Minifigs: []model.SetMinifig{{Number: "fig-1", Quantity: 2}},
					},
					{
						Version: 1,
						Parts: []model.SetPart{
							{Number: "3001", ColorID: 0, Quantity: 4, ImgURL: strPtr("https://assets/3001.jpg")},
							{Number: "3001", ColorID: 47, Quantity: 1, IsSpare: true},
						},
						Minifigs: []model.SetMinifig{},
					},
				},
			},
			{Number: "3000-1", Name: "Empty", Versions: []model.SetVersion{}},
		},
	}
}

func TestExporter_Export(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	e := New(db, zap.NewNop(), 1)

	require.NoError(t, e.Migrate(ctx))

	run, err := e.Export(ctx, sampleData())
	require.NoError(t, err)
	assert.Len(t, run.ID, 36)
	assert.Equal(t, 2, run.Sets)
	assert.Equal(t, 2, run.Versions)
	assert.Equal(t, 3, run.Parts)
	assert.Equal(t, 1, run.Minifigs)

	var versions []SetVersionRow
	require.NoError(t, db.Order("position").Find(&versions).Error)
	require.Len(t, versions, 2)
	assert.Equal(t, uint16(2), versions[0].Version)
	assert.Equal(t, uint16(1), versions[1].Version)

	var spares int64
	require.NoError(t, db.Model(&SetPartRow{}).Where("set_version_id = ? AND is_spare = ?", versions[1].ID, true).Count(&spares).Error)
	assert.Equal(t, int64(1), spares)

	var minifig SetMinifigRow
	require.NoError(t, db.First(&minifig).Error)
	assert.Equal(t, versions[0].ID, minifig.SetVersionID)

	var stored RunRow
	require.NoError(t, db.First(&stored, "id = ?", run.ID).Error)
	assert.Equal(t, 3, stored.Parts)

	t.Run("SecondExportReplacesCatalog", func(t *testing.T) {
		run2, err := e.Export(ctx, sampleData())
		require.NoError(t, err)
		assert.NotEqual(t, run.ID, run2.ID)

		var sets, parts, runs int64
		require.NoError(t, db.Model(&SetRow{}).Count(&sets).Error)
		require.NoError(t, db.Model(&SetPartRow{}).Count(&parts).Error)
		require.NoError(t, db.Model(&RunRow{}).Count(&runs).Error)
		assert.Equal(t, int64(2), sets)
		assert.Equal(t, int64(3), parts)
		assert.Equal(t, int64(2), runs)
	})
}

func TestExporter_ExportRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	e := New(db, zap.NewNop(), 0)
	require.NoError(t, e.Migrate(ctx))

	_, err := e.Export(ctx, sampleData())
	require.NoError(t, err)

	bad := sampleData()
	bad.Parts = append(bad.Parts, bad.Parts[0]) // duplicate primary key
	_, err = e.Export(ctx, bad)
	require.Error(t, err)

	var sets int64
	require.NoError(t, db.Model(&SetRow{}).Count(&sets).Error)
	assert.Equal(t, int64(2), sets)
}

func TestVerifySchema(t *testing.T) {
	db := setupDB(t)

	t.Run("Matched", func(t *testing.T) {
		require.NoError(t, db.AutoMigrate(&PartRow{}))
		report, err := VerifySchema(db, &PartRow{})
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, "ok", report.Tables["parts"].Status)
	})

	t.Run("MissingTable", func(t *testing.T) {
		report, err := VerifySchema(db, &SetRow{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Contains(t, report.Tables["sets"].MissingColumns, "number")
	})

	t.Run("NilDB", func(t *testing.T) {
		_, err := VerifySchema(nil, &PartRow{})
		assert.Error(t, err)
	})
}

func TestVerifySchema_TypeMismatch(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("number", "varchar(64)", "NO", "PRI", nil, "").
		AddRow("name", "varchar(255)", "YES", "", nil, "").
		AddRow("part_category_id", "int unsigned", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `parts`").WillReturnRows(rows)

	report, err := VerifySchema(db, &PartRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tr := report.Tables["parts"]
	assert.Equal(t, "error", tr.Status)
	assert.Equal(t, []string{"material"}, tr.MissingColumns)
	assert.Equal(t, []string{"name: expected text, got varchar(255)"}, tr.TypeMismatches)
}
