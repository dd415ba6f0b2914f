package table

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Store holds every table of one catalog snapshot. It is built once by ReadAll
// and treated as read-only afterwards.
type Store struct {
	Colors            []ColorRecord
	Inventories       []InventoryRecord
	InventoryMinifigs []InventoryMinifigRecord
	InventoryParts    []InventoryPartRecord
	Minifigs          []MinifigRecord
	Parts             []PartRecord
	PartCategories    []PartCategoryRecord
	Sets              []SetRecord
	Themes            []ThemeRecord
}

// Counts returns the number of rows per table, keyed by file name.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		ColorsFile:            len(s.Colors),
		InventoriesFile:       len(s.Inventories),
		InventoryMinifigsFile: len(s.InventoryMinifigs),
		InventoryPartsFile:    len(s.InventoryParts),
		MinifigsFile:          len(s.Minifigs),
		PartsFile:             len(s.Parts),
		PartCategoriesFile:    len(s.PartCategories),
		SetsFile:              len(s.Sets),
		ThemesFile:            len(s.Themes),
	}
}

// Missing returns the table files absent from workdir, in Files order.
func Missing(workdir string) []string {
	var missing []string
	for _, name := range Files {
		info, err := os.Stat(filepath.Join(workdir, name))
		if err != nil || info.IsDir() {
			missing = append(missing, name)
		}
	}
	return missing
}

// ReadAll reads every table of workdir. Tables are read concurrently; the first
// failure cancels the others and is returned.
func ReadAll(ctx context.Context, workdir string) (*Store, error) {
	if missing := Missing(workdir); len(missing) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", ErrMissingFile, workdir, strings.Join(missing, ", "))
	}

	s := &Store{}
	g, ctx := errgroup.WithContext(ctx)
	path := func(name string) string { return filepath.Join(workdir, name) }

	g.Go(func() (err error) { s.Colors, err = readIn(ctx, colors, path(ColorsFile)); return })
	g.Go(func() (err error) { s.Inventories, err = readIn(ctx, inventories, path(InventoriesFile)); return })
	g.Go(func() (err error) {
		s.InventoryMinifigs, err = readIn(ctx, inventoryMinifigs, path(InventoryMinifigsFile))
		return
	})
	g.Go(func() (err error) {
		s.InventoryParts, err = readIn(ctx, inventoryParts, path(InventoryPartsFile))
		return
	})
	g.Go(func() (err error) { s.Minifigs, err = readIn(ctx, minifigs, path(MinifigsFile)); return })
	g.Go(func() (err error) { s.Parts, err = readIn(ctx, parts, path(PartsFile)); return })
	g.Go(func() (err error) {
		s.PartCategories, err = readIn(ctx, partCategories, path(PartCategoriesFile))
		return
	})
	g.Go(func() (err error) { s.Sets, err = readIn(ctx, sets, path(SetsFile)); return })
	g.Go(func() (err error) { s.Themes, err = readIn(ctx, themes, path(ThemesFile)); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

func readIn[T any](ctx context.Context, d decoder[T], path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs, err := d.ReadFile(path)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) || errors.Is(err, ErrMissingFile) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read %s table: %w", d.table, err)
	}
	return recs, nil
}
