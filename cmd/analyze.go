package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"briq-utils/core/analyze"
	"briq-utils/core/catalog"
	"briq-utils/core/model"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [set-number]",
	Short: "Report version statistics, theme depth and version diffs",
	Long: `Prints how many sets have more than one and more than two inventory
versions, and the maximum depth of the theme hierarchy.

With a set number, also prints the parts unique to each version of that set and
the parts shared by all of them.`,
	Example: `  briq-utils analyze
  briq-utils analyze 6080-1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	cat, err := catalog.Load(cmd.Context(), cfg.Catalog, logg)
	if err != nil {
		return err
	}

	if len(cat.Diagnostics) > 0 {
		fmt.Println()
		printDiagnostics(os.Stdout, cat.Diagnostics)
	}

	stats := analyze.Stats(cat.Data.Sets)
	fmt.Println("\n=== Set Versions ===")
	fmt.Printf("Sets: %d\n", stats.Sets)
	fmt.Printf("More than 1 version: %d (%.2f%%)\n", stats.MoreThanOne, stats.MoreThanOnePercent)
	fmt.Printf("More than 2 versions: %d (%.2f%%)\n", stats.MoreThanTwo, stats.MoreThanTwoPercent)
	counts := make([]int, 0, len(stats.Distribution))
	for n := range stats.Distribution {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	for _, n := range counts {
		fmt.Printf("  %s: %s\n", english.Plural(n, "version", ""), english.Plural(stats.Distribution[n], "set", ""))
	}

	depth, err := analyze.MaxDepth(cat.Store.Themes)
	if err != nil {
		return fmt.Errorf("theme hierarchy: %w", err)
	}
	fmt.Println("\n=== Themes ===")
	fmt.Printf("Max depth: %d\n", depth)

	if len(args) == 0 {
		return nil
	}

	set, ok := cat.Data.FindSet(args[0])
	if !ok {
		logg.Warn("Unknown set", zap.String("set", args[0]))
		fmt.Printf("\nSet %s not found\n", args[0])
		return nil
	}
	printDiff(set, analyze.DiffSet(set))
	return nil
}

func printDiff(set model.Set, diff analyze.VersionDiff) {
	fmt.Printf("\n=== %s %s (%s) ===\n", set.Number, set.Name, english.Plural(len(set.Versions), "version", ""))
	fmt.Printf("Common to all versions: %s\n", english.Plural(len(diff.Common), "part", ""))
	for _, p := range diff.Common {
		fmt.Printf("  %s\n", formatPart(p))
	}
	for i, unique := range diff.Unique {
		fmt.Printf("Only in version %d: %s\n", set.Versions[i].Version, english.Plural(len(unique), "part", ""))
		for _, p := range unique {
			fmt.Printf("  %s\n", formatPart(p))
		}
	}
}

func formatPart(p model.SetPart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s color=%d x%d", p.Number, p.ColorID, p.Quantity)
	if p.IsSpare {
		b.WriteString(" spare")
	}
	return b.String()
}
