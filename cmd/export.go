package cmd

import (
	"fmt"
	"time"

	"briq-utils/core/catalog"
	"briq-utils/core/database"
	"briq-utils/core/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchSizeFlag int
	migrateOnly   bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog model into a database",
	Long: `Normalizes the CSV tables and replaces the catalog tables of the configured
database (DATABASE_DRIVER mysql or sqlite) in a single transaction.

The schema is created or updated first and verified against the expected columns.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&batchSizeFlag, "batch-size", export.DefaultBatchSize, "Rows per INSERT statement")
	exportCmd.Flags().BoolVar(&migrateOnly, "migrate-only", false, "Create and verify the schema without writing rows")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}
	logg = logg.With(zap.String("driver", cfg.Database.Driver))

	exporter := export.New(db, logg, batchSizeFlag)
	if err := exporter.Migrate(ctx); err != nil {
		return err
	}
	logg.Info("Schema verified")
	if migrateOnly {
		return nil
	}

	cat, err := catalog.Load(ctx, cfg.Catalog, logg)
	if err != nil {
		return err
	}

	run, err := exporter.Export(ctx, cat.Data)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Export ===")
	fmt.Printf("Run: %s\n", run.ID)
	fmt.Printf("Sets: %d\n", run.Sets)
	fmt.Printf("Versions: %d\n", run.Versions)
	fmt.Printf("Parts: %d\n", run.Parts)
	fmt.Printf("Minifigs: %d\n", run.Minifigs)
	fmt.Printf("Execution Time: %s\n", run.Elapsed.Round(time.Millisecond))
	return nil
}
