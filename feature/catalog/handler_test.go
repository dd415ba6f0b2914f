package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"briq-utils/core/analyze"
	pipeline "briq-utils/core/catalog"
	"briq-utils/core/mirror"
	"briq-utils/core/model"
	"briq-utils/core/reconcile"
	"briq-utils/core/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixture = "../../core/table/testdata/catalog"

func setupTestApp(t *testing.T, workdir string) (*fiber.App, *Service) {
	app := fiber.New()
	svc := NewService(
		pipeline.Config{Workdir: workdir, CacheTTLSeconds: 60},
		mirror.Config{CacheDir: t.TempDir()},
		nil, "", zap.NewNop(),
	)
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func get(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	if out != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleSummary(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var body map[string]any
	require.Equal(t, 200, get(t, app, "/catalog", &body))
	assert.EqualValues(t, 3, body["sets"])
	assert.EqualValues(t, 2, body["parts"])
	assert.EqualValues(t, 1, body["minifigs"])
	assert.Len(t, body["diagnostics"], 1)
}

func TestHandleSet(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var set model.Set
	require.Equal(t, 200, get(t, app, "/catalog/sets/1000-1", &set))
	assert.Equal(t, "Space Cruiser, Large", set.Name)
	assert.Len(t, set.Versions, 2)

	assert.Equal(t, 404, get(t, app, "/catalog/sets/404-1", nil))
}

func TestHandleSetDiff(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var diff analyze.VersionDiff
	require.Equal(t, 200, get(t, app, "/catalog/sets/1000-1/diff", &diff))
	require.Len(t, diff.Unique, 2)
	require.Len(t, diff.Common, 1)
	assert.Equal(t, "3001", diff.Common[0].Number)
	require.Len(t, diff.Unique[0], 1)
	assert.Equal(t, "3002", diff.Unique[0][0].Number)
	assert.Empty(t, diff.Unique[1])

	assert.Equal(t, 404, get(t, app, "/catalog/sets/404-1/diff", nil))
}

func TestHandleStats(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var stats analyze.VersionStats
	require.Equal(t, 200, get(t, app, "/catalog/stats", &stats))
	assert.Equal(t, 3, stats.Sets)
	assert.Equal(t, 1, stats.MoreThanOne)
	assert.Equal(t, 0, stats.MoreThanTwo)
}

func TestHandleThemeDepth(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var body map[string]int
	require.Equal(t, 200, get(t, app, "/catalog/themes/depth", &body))
	assert.Equal(t, 2, body["depth"])
}

func TestHandleThemeDepth_Cycle(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes.csv"),
		[]byte("id,name,parent_id\n1,Space,2\n2,Classic Space,1\n"), 0o644))

	app, _ := setupTestApp(t, dir)
	assert.Equal(t, fiber.StatusUnprocessableEntity, get(t, app, "/catalog/themes/depth", nil))
}

func TestHandleValidate(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var report validate.Report
	require.Equal(t, 200, get(t, app, "/catalog/validate", &report))
	assert.Empty(t, report.Duplicates)
	require.Len(t, report.Dangling, 1)
	assert.Equal(t, "9999", report.Dangling[0].Key)
}

func TestHandleAssets(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var summary reconcile.PlanSummary
	require.Equal(t, 200, get(t, app, "/catalog/assets?refresh=true", &summary))
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 3, summary.Missing[mirror.SourceCache])
	assert.Equal(t, 0, summary.PurgeActions)
}

func TestHandleAsset(t *testing.T) {
	app, _ := setupTestApp(t, fixture)

	var result reconcile.Result
	require.Equal(t, 200, get(t, app, "/catalog/assets/cdn.rebrickable.com/media/sets/1000-1.jpg", &result))
	assert.Equal(t, "cdn.rebrickable.com/media/sets/1000-1.jpg", result.ID)
	assert.True(t, result.In(mirror.SourceCatalog))
	assert.False(t, result.In(mirror.SourceCache))

	assert.Equal(t, fiber.StatusNotFound, get(t, app, "/catalog/assets/cdn.example/nothing.jpg", nil))
}

func TestHandleReload(t *testing.T) {
	app, svc := setupTestApp(t, fixture)

	first, err := svc.Catalog(t.Context())
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/reload", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	second, err := svc.Catalog(t.Context())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestHandleSummary_LoadError(t *testing.T) {
	app, _ := setupTestApp(t, t.TempDir())
	assert.Equal(t, 500, get(t, app, "/catalog", nil))
}

func copyFixture(t *testing.T, dst string) {
	t.Helper()
	entries, err := os.ReadDir(fixture)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(fixture, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dst, e.Name()), data, 0o644))
	}
}
