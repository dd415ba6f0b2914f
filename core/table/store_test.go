package table

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	store, err := ReadAll(context.Background(), "testdata/catalog")
	require.NoError(t, err)

	assert.Len(t, store.Sets, 3)
	assert.Len(t, store.Parts, 2)
	assert.Len(t, store.Inventories, 3)
	assert.Len(t, store.InventoryParts, 5)
	assert.Len(t, store.InventoryMinifigs, 2)
	assert.Len(t, store.Colors, 3)
	assert.Len(t, store.Themes, 2)
	assert.Len(t, store.PartCategories, 1)
	assert.Len(t, store.Minifigs, 1)

	t.Run("QuotedField", func(t *testing.T) {
		assert.Equal(t, "Space Cruiser, Large", store.Sets[0].Name)
		assert.Equal(t, uint16(1979), store.Sets[0].Year)
	})

	t.Run("OptionalFields", func(t *testing.T) {
		assert.Nil(t, store.Themes[0].ParentID)
		require.NotNil(t, store.Themes[1].ParentID)
		assert.Equal(t, uint32(1), *store.Themes[1].ParentID)

		assert.Nil(t, store.Colors[0].Y1)
		require.NotNil(t, store.Colors[1].Y2)
		assert.Equal(t, uint16(2024), *store.Colors[1].Y2)
	})

	t.Run("SignedAndBool", func(t *testing.T) {
		assert.Equal(t, int32(-1), store.Colors[0].ID)
		assert.True(t, store.Colors[2].IsTrans)
		assert.True(t, store.InventoryParts[3].IsSpare)
		assert.False(t, store.InventoryParts[0].IsSpare)
	})

	t.Run("Counts", func(t *testing.T) {
		counts := store.Counts()
		assert.Equal(t, 3, counts[SetsFile])
		assert.Len(t, counts, len(Files))
	})
}

// writeCatalog copies the fixture catalog into a temp dir and applies overrides.
func writeCatalog(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range Files {
		data, err := os.ReadFile(filepath.Join("testdata/catalog", name))
		require.NoError(t, err)
		if content, ok := overrides[name]; ok {
			data = []byte(content)
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}

func TestReadAll_Errors(t *testing.T) {
	t.Run("MissingFiles", func(t *testing.T) {
		dir := writeCatalog(t, nil)
		require.NoError(t, os.Remove(filepath.Join(dir, ThemesFile)))
		require.NoError(t, os.Remove(filepath.Join(dir, ColorsFile)))

		assert.Equal(t, []string{ColorsFile, ThemesFile}, Missing(dir))

		_, err := ReadAll(context.Background(), dir)
		assert.ErrorIs(t, err, ErrMissingFile)
		assert.Contains(t, err.Error(), "colors.csv, themes.csv")
	})

	t.Run("Overflow", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{
			InventoriesFile: "id,version,set_num\n1,1,1000-1\n2,70000,1000-1\n",
		})

		_, err := ReadAll(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOverflow)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "inventories", perr.Table)
		assert.Equal(t, 3, perr.Line)
		assert.Equal(t, "version", perr.Column)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{
			PartsFile: "part_num,name,part_material\n3001,Brick,Plastic\n",
		})

		_, err := ReadAll(context.Background(), dir)
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "part_cat_id")
	})

	t.Run("WrongFieldCount", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{
			PartCategoriesFile: "id,name\n11,Bricks,extra\n",
		})

		_, err := ReadAll(context.Background(), dir)
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "part-categories", perr.Table)
		assert.Equal(t, 2, perr.Line)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{ThemesFile: ""})

		_, err := ReadAll(context.Background(), dir)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "themes:1"))
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ReadAll(ctx, "testdata/catalog")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
