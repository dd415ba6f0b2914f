package export

import "time"

// PartRow is a row of parts.
type PartRow struct {
	Number         string `gorm:"column:number;primaryKey;type:varchar(64)"`
	Name           string `gorm:"column:name;type:text"`
	PartCategoryID uint32 `gorm:"column:part_category_id"`
	Material       string `gorm:"column:material;type:varchar(64)"`
}

func (PartRow) TableName() string { return "parts" }

// MinifigRow is a row of minifigs.
type MinifigRow struct {
	Number     string  `gorm:"column:number;primaryKey;type:varchar(64)"`
	Name       string  `gorm:"column:name;type:text"`
	PartsCount uint32  `gorm:"column:parts_count"`
	ImgURL     *string `gorm:"column:img_url;type:text"`
}

func (MinifigRow) TableName() string { return "minifigs" }

// SetRow is a row of sets.
type SetRow struct {
	Number        string  `gorm:"column:number;primaryKey;type:varchar(64)"`
	Name          string  `gorm:"column:name;type:text"`
	Year          uint16  `gorm:"column:year"`
	ThemeID       uint32  `gorm:"column:theme_id;index"`
	PartsCount    uint32  `gorm:"column:parts_count"`
	ImgURL        *string `gorm:"column:img_url;type:text"`
	IsPack        bool    `gorm:"column:is_pack"`
	IsUnreleased  bool    `gorm:"column:is_unreleased"`
	IsAccessories bool    `gorm:"column:is_accessories"`
}

func (SetRow) TableName() string { return "sets" }

// SetVersionRow is a row of set_versions.
type SetVersionRow struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	SetNumber string `gorm:"column:set_number;type:varchar(64);index"`
	Version   uint16 `gorm:"column:version"`
	Position  int    `gorm:"column:position"`
}

func (SetVersionRow) TableName() string { return "set_versions" }

// SetPartRow is a row of set_parts.
type SetPartRow struct {
	ID           uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	SetVersionID uint64  `gorm:"column:set_version_id;index"`
	PartNumber   string  `gorm:"column:part_number;type:varchar(64)"`
	ColorID      int32   `gorm:"column:color_id"`
	Quantity     uint16  `gorm:"column:quantity"`
	IsSpare      bool    `gorm:"column:is_spare"`
	ImgURL       *string `gorm:"column:img_url;type:text"`
}

func (SetPartRow) TableName() string { return "set_parts" }

// SetMinifigRow is a row of set_minifigs.
type SetMinifigRow struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	SetVersionID  uint64 `gorm:"column:set_version_id;index"`
	MinifigNumber string `gorm:"column:minifig_number;type:varchar(64)"`
	Quantity      uint16 `gorm:"column:quantity"`
}

func (SetMinifigRow) TableName() string { return "set_minifigs" }

// RunRow records one export.
type RunRow struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	StartedAt  time.Time `gorm:"column:started_at"`
	FinishedAt time.Time `gorm:"column:finished_at"`
	Sets       int       `gorm:"column:sets"`
	Versions   int       `gorm:"column:versions"`
	Parts      int       `gorm:"column:parts"`
	Minifigs   int       `gorm:"column:minifigs"`
}

func (RunRow) TableName() string { return "export_runs" }

// catalogModels are cleared and refilled by every export, children first.
var catalogModels = []any{
	&SetPartRow{},
	&SetMinifigRow{},
	&SetVersionRow{},
	&SetRow{},
	&MinifigRow{},
	&PartRow{},
}

// Models returns every model managed by the exporter.
func Models() []any {
	return append([]any{&RunRow{}}, catalogModels...)
}
