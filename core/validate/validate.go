package validate

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"briq-utils/core/analyze"
	"briq-utils/core/reconcile"
	"briq-utils/core/table"

	"golang.org/x/sync/errgroup"
)

// Duplicate is a key that appears on more than one row of a table.
type Duplicate struct {
	Table string `json:"table"`
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Dangling is a foreign key value with no matching parent row.
type Dangling struct {
	Relation string `json:"relation"`
	Key      string `json:"key"`
	Rows     int    `json:"rows"`
}

// RelationSummary gives the row counts checked for one relation.
type RelationSummary struct {
	Relation string `json:"relation"`
	Keys     int    `json:"keys"`
	Dangling int    `json:"dangling"`
}

// Report is the result of Validate.
type Report struct {
	Duplicates []Duplicate       `json:"duplicates"`
	Dangling   []Dangling        `json:"dangling"`
	Relations  []RelationSummary `json:"relations"`
	ThemeError string            `json:"theme_error,omitempty"`
	ThemeDepth int               `json:"theme_depth"`
}

// OK reports whether no problem was found.
func (r *Report) OK() bool {
	return len(r.Duplicates) == 0 && len(r.Dangling) == 0 && r.ThemeError == ""
}

// Relation is a child column referencing a parent key.
type Relation struct {
	Name   string
	Child  func(*table.Store) []string
	Parent func(*table.Store) []string
}

// primaryKey is a table key that must be unique.
type primaryKey struct {
	table string
	keys  func(*table.Store) []string
}

func column[T any](rows []T, key func(T) string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = key(r)
	}
	return out
}

func u32(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

// Relations are the foreign keys of the catalog schema.
var Relations = []Relation{
	{
		Name:   "inventories.set_num -> sets.set_num",
		Child:  func(s *table.Store) []string { return column(s.Inventories, func(r table.InventoryRecord) string { return r.SetNum }) },
		Parent: setNums,
	},
	{
		Name:   "inventory-parts.inventory_id -> inventories.id",
		Child:  func(s *table.Store) []string { return column(s.InventoryParts, func(r table.InventoryPartRecord) string { return u32(r.InventoryID) }) },
		Parent: inventoryIDs,
	},
	{
		Name:   "inventory-parts.part_num -> parts.part_num",
		Child:  func(s *table.Store) []string { return column(s.InventoryParts, func(r table.InventoryPartRecord) string { return r.PartNum }) },
		Parent: partNums,
	},
	{
		Name: "inventory-parts.color_id -> colors.id",
		Child: func(s *table.Store) []string {
			return column(s.InventoryParts, func(r table.InventoryPartRecord) string { return strconv.Itoa(int(r.ColorID)) })
		},
		Parent: func(s *table.Store) []string {
			return column(s.Colors, func(r table.ColorRecord) string { return strconv.Itoa(int(r.ID)) })
		},
	},
	{
		Name:   "inventory-minifigs.inventory_id -> inventories.id",
		Child:  func(s *table.Store) []string { return column(s.InventoryMinifigs, func(r table.InventoryMinifigRecord) string { return u32(r.InventoryID) }) },
		Parent: inventoryIDs,
	},
	{
		Name:   "inventory-minifigs.fig_num -> minifigs.fig_num",
		Child:  func(s *table.Store) []string { return column(s.InventoryMinifigs, func(r table.InventoryMinifigRecord) string { return r.FigNum }) },
		Parent: figNums,
	},
	{
		Name:   "parts.part_cat_id -> part-categories.id",
		Child:  func(s *table.Store) []string { return column(s.Parts, func(r table.PartRecord) string { return u32(r.PartCatID) }) },
		Parent: func(s *table.Store) []string { return column(s.PartCategories, func(r table.PartCategoryRecord) string { return u32(r.ID) }) },
	},
	{
		Name:   "sets.theme_id -> themes.id",
		Child:  func(s *table.Store) []string { return column(s.Sets, func(r table.SetRecord) string { return u32(r.ThemeID) }) },
		Parent: themeIDs,
	},
}

var primaryKeys = []primaryKey{
	{table.PartsFile, partNums},
	{table.SetsFile, setNums},
	{table.MinifigsFile, figNums},
	{table.InventoriesFile, inventoryIDs},
	{table.InventoriesFile + " (set_num, version)", func(s *table.Store) []string {
		return column(s.Inventories, func(r table.InventoryRecord) string {
			return r.SetNum + " v" + strconv.FormatUint(uint64(r.Version), 10)
		})
	}},
	{table.ColorsFile, func(s *table.Store) []string {
		return column(s.Colors, func(r table.ColorRecord) string { return strconv.Itoa(int(r.ID)) })
	}},
	{table.ThemesFile, themeIDs},
	{table.PartCategoriesFile, func(s *table.Store) []string {
		return column(s.PartCategories, func(r table.PartCategoryRecord) string { return u32(r.ID) })
	}},
}

func setNums(s *table.Store) []string {
	return column(s.Sets, func(r table.SetRecord) string { return r.SetNum })
}

func partNums(s *table.Store) []string {
	return column(s.Parts, func(r table.PartRecord) string { return r.PartNum })
}

func figNums(s *table.Store) []string {
	return column(s.Minifigs, func(r table.MinifigRecord) string { return r.FigNum })
}

func inventoryIDs(s *table.Store) []string {
	return column(s.Inventories, func(r table.InventoryRecord) string { return u32(r.ID) })
}

func themeIDs(s *table.Store) []string {
	return column(s.Themes, func(r table.ThemeRecord) string { return u32(r.ID) })
}

// Validate runs every check over s.
func Validate(ctx context.Context, s *table.Store) (*Report, error) {
	report := &Report{
		Duplicates: []Duplicate{},
		Dangling:   []Dangling{},
		Relations:  make([]RelationSummary, len(Relations)),
	}

	for _, pk := range primaryKeys {
		report.Duplicates = append(report.Duplicates, Duplicates(pk.table, pk.keys(s))...)
	}

	dangling := make([][]Dangling, len(Relations))
	g, gctx := errgroup.WithContext(ctx)
	for i, rel := range Relations {
		g.Go(func() error {
			summary, found, err := CheckRelation(gctx, rel, s)
			if err != nil {
				return err
			}
			report.Relations[i] = summary
			dangling[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, d := range dangling {
		report.Dangling = append(report.Dangling, d...)
	}

	depth, err := analyze.MaxDepth(s.Themes)
	if err != nil {
		report.ThemeError = err.Error()
	}
	report.ThemeDepth = depth

	return report, nil
}

// Duplicates returns the keys that occur more than once, sorted by key.
func Duplicates(tableName string, keys []string) []Duplicate {
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k]++
	}

	var out []Duplicate
	for k, n := range counts {
		if n > 1 {
			out = append(out, Duplicate{Table: tableName, Key: k, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// CheckRelation reconciles the child values of rel against its parent keys.
func CheckRelation(ctx context.Context, rel Relation, s *table.Store) (RelationSummary, []Dangling, error) {
	childKeys := rel.Child(s)
	rows := make(map[string]int, len(childKeys))
	for _, k := range childKeys {
		rows[k]++
	}

	spec := &reconcile.Spec{
		Name: rel.Name,
		Sources: []reconcile.Source{
			reconcile.KeySource("child", childKeys),
			reconcile.KeySource("parent", rel.Parent(s)),
		},
	}
	results, err := reconcile.ReconcileAll(ctx, spec)
	if err != nil {
		return RelationSummary{}, nil, fmt.Errorf("failed to check %s: %w", rel.Name, err)
	}

	summary := RelationSummary{Relation: rel.Name, Keys: len(rows)}
	var dangling []Dangling
	for _, r := range results {
		if r.In("child") && !r.In("parent") {
			dangling = append(dangling, Dangling{Relation: rel.Name, Key: r.ID, Rows: rows[r.ID]})
		}
	}
	summary.Dangling = len(dangling)
	return summary, dangling, nil
}
