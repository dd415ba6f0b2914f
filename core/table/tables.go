package table

// File names of the catalog tables inside a work directory.
const (
	ColorsFile            = "colors.csv"
	InventoriesFile       = "inventories.csv"
	InventoryMinifigsFile = "inventory-minifigs.csv"
	InventoryPartsFile    = "inventory-parts.csv"
	MinifigsFile          = "minifigs.csv"
	PartsFile             = "parts.csv"
	PartCategoriesFile    = "part-categories.csv"
	SetsFile              = "sets.csv"
	ThemesFile            = "themes.csv"
)

// Files lists every table file a work directory must contain.
var Files = []string{
	ColorsFile,
	InventoriesFile,
	InventoryMinifigsFile,
	InventoryPartsFile,
	MinifigsFile,
	PartsFile,
	PartCategoriesFile,
	SetsFile,
	ThemesFile,
}

var colors = decoder[ColorRecord]{
	table:   "colors",
	columns: []string{"id", "name", "rgb", "is_trans", "num_parts", "num_sets", "y1", "y2"},
	decode: func(r *row) ColorRecord {
		return ColorRecord{
			ID:       r.i32("id"),
			Name:     r.str("name"),
			RGB:      r.str("rgb"),
			IsTrans:  r.boolean("is_trans"),
			NumParts: r.u32("num_parts"),
			NumSets:  r.u32("num_sets"),
			Y1:       r.optU16("y1"),
			Y2:       r.optU16("y2"),
		}
	},
}

var inventories = decoder[InventoryRecord]{
	table:   "inventories",
	columns: []string{"id", "version", "set_num"},
	decode: func(r *row) InventoryRecord {
		return InventoryRecord{
			ID:      r.u32("id"),
			Version: r.u16("version"),
			SetNum:  r.str("set_num"),
		}
	},
}

var inventoryMinifigs = decoder[InventoryMinifigRecord]{
	table:   "inventory-minifigs",
	columns: []string{"inventory_id", "fig_num", "quantity"},
	decode: func(r *row) InventoryMinifigRecord {
		return InventoryMinifigRecord{
			InventoryID: r.u32("inventory_id"),
			FigNum:      r.str("fig_num"),
			Quantity:    r.u16("quantity"),
		}
	},
}

var inventoryParts = decoder[InventoryPartRecord]{
	table:   "inventory-parts",
	columns: []string{"inventory_id", "part_num", "color_id", "quantity", "is_spare", "img_url"},
	decode: func(r *row) InventoryPartRecord {
		return InventoryPartRecord{
			InventoryID: r.u32("inventory_id"),
			PartNum:     r.str("part_num"),
			ColorID:     r.i32("color_id"),
			Quantity:    r.u16("quantity"),
			IsSpare:     r.boolean("is_spare"),
			ImgURL:      r.str("img_url"),
		}
	},
}

var minifigs = decoder[MinifigRecord]{
	table:   "minifigs",
	columns: []string{"fig_num", "name", "num_parts", "img_url"},
	decode: func(r *row) MinifigRecord {
		return MinifigRecord{
			FigNum:   r.str("fig_num"),
			Name:     r.str("name"),
			NumParts: r.u32("num_parts"),
			ImgURL:   r.str("img_url"),
		}
	},
}

var parts = decoder[PartRecord]{
	table:   "parts",
	columns: []string{"part_num", "name", "part_cat_id", "part_material"},
	decode: func(r *row) PartRecord {
		return PartRecord{
			PartNum:      r.str("part_num"),
			Name:         r.str("name"),
			PartCatID:    r.u32("part_cat_id"),
			PartMaterial: r.str("part_material"),
		}
	},
}

var partCategories = decoder[PartCategoryRecord]{
	table:   "part-categories",
	columns: []string{"id", "name"},
	decode: func(r *row) PartCategoryRecord {
		return PartCategoryRecord{
			ID:   r.u32("id"),
			Name: r.str("name"),
		}
	},
}

var sets = decoder[SetRecord]{
	table:   "sets",
	columns: []string{"set_num", "name", "year", "theme_id", "num_parts", "img_url"},
	decode: func(r *row) SetRecord {
		return SetRecord{
			SetNum:   r.str("set_num"),
			Name:     r.str("name"),
			Year:     r.u16("year"),
			ThemeID:  r.u32("theme_id"),
			NumParts: r.u32("num_parts"),
			ImgURL:   r.str("img_url"),
		}
	},
}

var themes = decoder[ThemeRecord]{
	table:   "themes",
	columns: []string{"id", "name", "parent_id"},
	decode: func(r *row) ThemeRecord {
		return ThemeRecord{
			ID:       r.u32("id"),
			Name:     r.str("name"),
			ParentID: r.optU32("parent_id"),
		}
	},
}
