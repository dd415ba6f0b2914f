package cmd

import (
	"fmt"
	"os"

	"briq-utils/core/config"
	"briq-utils/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	workdirFlag      string
	outputFlag       string
	targetPrefixFlag string
	versionOrderFlag string
	strictURLsFlag   bool
	logLevelFlag     string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "briq-utils",
	Short: "Build tools for the briq catalog",
	Long: `briq-utils turns the Rebrickable CSV tables into the briq catalog.
It generates the catalog model and Swift identifiers, validates and analyzes the
tables, mirrors the referenced images and exports the catalog to a database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// The CLI reports failures in console format with ISO8601 timestamps (DevConfig)
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&workdirFlag, "workdir", "w", "", "Directory holding the CSV tables (overrides CATALOG_WORKDIR)")
	flags.StringVarP(&outputFlag, "output", "o", "", "Directory generated files are written to (defaults to the workdir)")
	flags.StringVar(&targetPrefixFlag, "target-prefix", "", "Asset URL prefix written into the model")
	flags.StringVar(&versionOrderFlag, "version-order", "", "Order of set versions: source or numeric")
	flags.BoolVar(&strictURLsFlag, "strict-urls", false, "Fail on asset URLs outside the source prefix")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
}

// setup loads the configuration, applies the persistent flags and builds the
// logger every command uses.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("workdir") {
		cfg.Catalog.Workdir = workdirFlag
	}
	if flags.Changed("output") {
		cfg.Catalog.Output = outputFlag
	}
	if flags.Changed("target-prefix") {
		cfg.Catalog.TargetPrefix = targetPrefixFlag
	}
	if flags.Changed("version-order") {
		cfg.Catalog.VersionOrder = versionOrderFlag
	}
	if flags.Changed("strict-urls") {
		cfg.Catalog.StrictURLs = strictURLsFlag
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}
