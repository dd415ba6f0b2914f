package table

// ColorRecord is a row of colors.csv.
type ColorRecord struct {
	ID       int32
	Name     string
	RGB      string
	IsTrans  bool
	NumParts uint32
	NumSets  uint32
	Y1       *uint16
	Y2       *uint16
}

// InventoryRecord is a row of inventories.csv. Versions of the same set are not
// guaranteed to be contiguous or sorted.
type InventoryRecord struct {
	ID      uint32
	Version uint16
	SetNum  string
}

// InventoryMinifigRecord is a row of inventory-minifigs.csv.
type InventoryMinifigRecord struct {
	InventoryID uint32
	FigNum      string
	Quantity    uint16
}

// InventoryPartRecord is a row of inventory-parts.csv.
type InventoryPartRecord struct {
	InventoryID uint32
	PartNum     string
	ColorID     int32
	Quantity    uint16
	IsSpare     bool
	ImgURL      string
}

// MinifigRecord is a row of minifigs.csv.
type MinifigRecord struct {
	FigNum   string
	Name     string
	NumParts uint32
	ImgURL   string
}

// PartRecord is a row of parts.csv.
type PartRecord struct {
	PartNum      string
	Name         string
	PartCatID    uint32
	PartMaterial string
}

// PartCategoryRecord is a row of part-categories.csv.
type PartCategoryRecord struct {
	ID   uint32
	Name string
}

// SetRecord is a row of sets.csv. SetNum has the form "<digits>-<variant>".
type SetRecord struct {
	SetNum   string
	Name     string
	Year     uint16
	ThemeID  uint32
	NumParts uint32
	ImgURL   string
}

// ThemeRecord is a row of themes.csv. Themes form a forest through ParentID.
type ThemeRecord struct {
	ID       uint32
	Name     string
	ParentID *uint32
}
