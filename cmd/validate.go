package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"briq-utils/core/catalog"
	"briq-utils/core/validate"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	validateJSONFlag bool
	validateFailFlag bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the CSV tables for duplicate keys and dangling references",
	Long: `Reads the CSV tables and reports duplicate primary keys, foreign keys that
reference missing rows and errors in the theme hierarchy. Nothing is repaired.

Use --fail to exit with an error when any issue is found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSONFlag, "json", false, "Save the detailed report as JSON")
	validateCmd.Flags().BoolVar(&validateFailFlag, "fail", false, "Exit with an error when issues are found")
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	store, err := catalog.Read(cmd.Context(), cfg.Catalog, logg)
	if err != nil {
		return err
	}

	report, err := validate.Validate(cmd.Context(), store)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	printValidateReport(report)

	if validateJSONFlag {
		filename := fmt.Sprintf("validate_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		fmt.Printf("\nDetailed JSON saved to: %s\n", filename)
	}

	fmt.Printf("Execution Time: %s\n", time.Since(start).Round(time.Millisecond))

	logg.Info("Validation completed",
		zap.Int("duplicates", len(report.Duplicates)),
		zap.Int("dangling", len(report.Dangling)),
		zap.Bool("ok", report.OK()))

	if validateFailFlag && !report.OK() {
		return fmt.Errorf("catalog tables have integrity errors")
	}
	return nil
}

func printValidateReport(report *validate.Report) {
	fmt.Println("\n=== Referential Integrity ===")
	for _, rel := range report.Relations {
		status := "ok"
		if rel.Dangling > 0 {
			status = english.Plural(rel.Dangling, "dangling key", "")
		}
		fmt.Printf("%-52s %8d keys  %s\n", rel.Relation, rel.Keys, status)
	}

	if len(report.Dangling) > 0 {
		fmt.Println("\nDangling references:")
		for _, d := range report.Dangling {
			fmt.Printf("  %s: %s (%s)\n", d.Relation, d.Key, english.Plural(d.Rows, "row", ""))
		}
	}

	fmt.Println("\n=== Primary Keys ===")
	if len(report.Duplicates) == 0 {
		fmt.Println("No duplicate keys")
	}
	for _, d := range report.Duplicates {
		fmt.Printf("  %s: %s appears %s\n", d.Table, d.Key, english.Plural(d.Count, "time", ""))
	}

	fmt.Println("\n=== Themes ===")
	if report.ThemeError != "" {
		fmt.Printf("Hierarchy error: %s\n", report.ThemeError)
	} else {
		fmt.Printf("Max depth: %d\n", report.ThemeDepth)
	}
}
