package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"briq-utils/core/catalog"
	"briq-utils/core/codegen"
	"briq-utils/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixture = "../core/table/testdata/catalog"

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetArgs(nil)
		for _, c := range []string{"workdir", "output"} {
			_ = RootCmd.PersistentFlags().Set(c, "")
			RootCmd.PersistentFlags().Lookup(c).Changed = false
		}
	})
	return RootCmd.ExecuteContext(context.Background())
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, execute(t, "generate", "--workdir", fixture, "--output", out))

	raw, err := os.ReadFile(filepath.Join(out, ModelFile))
	require.NoError(t, err)

	var data model.Data
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Len(t, data.Sets, 3)
	assert.Len(t, data.Parts, 2)

	for _, name := range []string{codegen.PartCategoriesFile, codegen.PartColorsFile, codegen.ThemesFile} {
		assert.FileExists(t, filepath.Join(out, name))
	}
}

func TestGenerate_MissingTables(t *testing.T) {
	err := execute(t, "generate", "--workdir", t.TempDir(), "--output", t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, execute(t, "validate", "--workdir", fixture))
}

func TestAnalyze(t *testing.T) {
	require.NoError(t, execute(t, "analyze", "--workdir", fixture, "1000-1"))
	// Unknown sets are reported, not failed.
	require.NoError(t, execute(t, "analyze", "--workdir", fixture, "404-1"))
}

func TestPrintDiagnostics(t *testing.T) {
	cat, err := catalog.Load(context.Background(), catalog.Config{Workdir: fixture}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, cat.Diagnostics, 1)

	var buf bytes.Buffer
	printDiagnostics(&buf, cat.Diagnostics)
	assert.Contains(t, buf.String(), "Dropped 1 inventory row referencing unknown parts")
	assert.Contains(t, buf.String(), "Set 1000-1 version 2: ignoring part 9999: does not exist")

	buf.Reset()
	printDiagnostics(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestProgressPrinter(t *testing.T) {
	p := progressPrinter()
	assert.NotPanics(t, func() {
		p(0, 0)
		p(1, 2)
		p(2, 2)
	})
}
