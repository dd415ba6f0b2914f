package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"briq-utils/core/catalog"
	"briq-utils/core/codegen"
	"briq-utils/core/normalize"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ModelFile is the name of the generated catalog model.
const ModelFile = "init.json"

var skipSwiftFlag bool

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the catalog model and Swift identifiers",
	Long: `Reads the CSV tables, normalizes them into the catalog model and writes
init.json together with PartCategories.swift, PartColors.swift and Themes.swift.

Inventory rows referencing unknown parts are dropped and listed in the output.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&skipSwiftFlag, "skip-swift", false, "Only write init.json")
	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	cat, err := catalog.Load(cmd.Context(), cfg.Catalog, logg)
	if err != nil {
		return err
	}

	files, err := generatedFiles(cat, !skipSwiftFlag)
	if err != nil {
		return err
	}

	outputDir := cfg.Catalog.OutputDir()
	if err := codegen.WriteFiles(files, outputDir); err != nil {
		return err
	}

	var size int
	for _, f := range files {
		size += len(f.Content)
		logg.Info("Generated file", zap.String("file", filepath.Join(outputDir, f.Filename)), zap.Int("bytes", len(f.Content)))
	}

	fmt.Printf("\nWrote %s (%s) to %s\n", english.Plural(len(files), "file", ""), humanize.Bytes(uint64(size)), outputDir)
	fmt.Printf("Catalog: %s, %s, %s\n",
		english.Plural(len(cat.Data.Sets), "set", ""),
		english.Plural(len(cat.Data.Parts), "part", ""),
		english.Plural(len(cat.Data.Minifigs), "minifig", ""))
	printDiagnostics(os.Stdout, cat.Diagnostics)
	fmt.Printf("Execution Time: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// printDiagnostics lists every dropped inventory row. It writes to w rather
// than the logger so the list survives --log-level error.
func printDiagnostics(w io.Writer, diags []normalize.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	fmt.Fprintf(w, "Dropped %s referencing unknown parts:\n", english.Plural(len(diags), "inventory row", ""))
	for _, d := range diags {
		fmt.Fprintf(w, "  %s\n", d)
	}
}

// generatedFiles renders the catalog model and, when swift is set, the
// identifier enums.
func generatedFiles(cat *catalog.Catalog, swift bool) ([]codegen.GeneratedFile, error) {
	data, err := json.MarshalIndent(cat.Data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}

	files := []codegen.GeneratedFile{{Filename: ModelFile, Content: append(data, '\n')}}
	if swift {
		files = append(files, codegen.SwiftFiles(cat.Store)...)
	}
	return files, nil
}
