package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"briq-utils/core/catalog"
	"briq-utils/core/mirror"
	"briq-utils/core/reconcile"
	"briq-utils/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cacheDirFlag string
	workersFlag  int
	rateFlag     float64
	uploadFlag   bool
	timeoutFlag  time.Duration

	statusStorageFlag bool
	purgeFlag         bool
	dryRunFlag        bool
	yesConfirm        bool
)

// mirrorCmd represents the mirror command
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Download every referenced image into the local cache",
	Long: `Collects the image URLs of sets, minifigs and inventory parts and downloads
them into <cache>/<host>/<path>. Files already in the cache are skipped, failed
downloads are reported and never abort the run.

With --upload, cached files are then pushed to the storage bucket under the same
key layout.`,
	Args: cobra.NoArgs,
	RunE: runMirror,
}

// mirrorStatusCmd reconciles the catalog URLs with the cache and the bucket.
var mirrorStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compare referenced images with the cache and the bucket",
	Long: `Reports images that are referenced but not cached (or not uploaded), and
cached or uploaded files that no table references any more.

Examples:
  # Report only
  mirror status

  # Include the storage bucket
  mirror status --storage

  # Remove orphaned files (with interactive confirmation)
  mirror status --storage --purge

  # Remove orphaned files without prompting
  mirror status --purge --yes`,
	Args: cobra.NoArgs,
	RunE: runMirrorStatus,
}

func init() {
	for _, c := range []*cobra.Command{mirrorCmd, mirrorStatusCmd} {
		c.Flags().StringVar(&cacheDirFlag, "cache-dir", "", "Asset cache directory (overrides MIRROR_CACHE_DIR)")
	}
	mirrorCmd.Flags().IntVar(&workersFlag, "workers", 0, "Concurrent downloads (overrides MIRROR_WORKERS)")
	mirrorCmd.Flags().Float64Var(&rateFlag, "rate", 0, "Maximum downloads per second, 0 for no limit")
	mirrorCmd.Flags().BoolVar(&uploadFlag, "upload", false, "Upload cached files to the storage bucket")
	mirrorCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Stop scheduling downloads after this duration")

	mirrorStatusCmd.Flags().BoolVar(&statusStorageFlag, "storage", false, "Include the storage bucket")
	mirrorStatusCmd.Flags().BoolVar(&purgeFlag, "purge", false, "Remove files no table references")
	mirrorStatusCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Force dry-run (no deletions even with --yes)")
	mirrorStatusCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	mirrorCmd.AddCommand(mirrorStatusCmd)
	RootCmd.AddCommand(mirrorCmd)
}

// mirrorConfig applies the mirror flags to the configured section.
func mirrorConfig(cmd *cobra.Command, cfg mirror.Config) mirror.Config {
	flags := cmd.Flags()
	if flags.Changed("cache-dir") {
		cfg.CacheDir = cacheDirFlag
	}
	if flags.Changed("workers") {
		cfg.Workers = workersFlag
	}
	if flags.Changed("rate") {
		cfg.RatePerSecond = rateFlag
	}
	if flags.Changed("upload") {
		cfg.Upload = uploadFlag
	}
	return cfg
}

func runMirror(cmd *cobra.Command, args []string) error {
	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()
	mcfg := mirrorConfig(cmd, cfg.Mirror)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if timeoutFlag > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeoutFlag)
		defer cancel()
	}

	store, err := catalog.Read(ctx, cfg.Catalog, logg)
	if err != nil {
		return err
	}
	urls := mirror.CollectURLs(store)
	logg.Info("Mirroring assets",
		zap.Int("urls", len(urls)),
		zap.String("cache_dir", mcfg.CacheDir),
		zap.Int("workers", mcfg.Workers))

	m := mirror.New(mcfg, logg, mirror.WithProgress(progressPrinter()))
	report, runErr := m.Run(ctx, urls)
	fmt.Fprintln(os.Stderr)
	if report != nil {
		fmt.Println("\n=== Mirror ===")
		fmt.Println(report.String())
		for _, f := range report.Failures {
			fmt.Printf("  %s: %v\n", f.URL, f.Err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("mirror interrupted: %w", runErr)
	}

	if !mcfg.Upload {
		return nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		return err
	}

	up, err := mirror.NewUploader(mcfg, client, cfg.Storage.Bucket, logg).Upload(ctx, urls)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	fmt.Println("\n=== Upload ===")
	fmt.Println(up.String())
	return nil
}

// progressPrinter returns a progress callback printing whole percentages to
// stderr when they change. It is safe for concurrent use.
func progressPrinter() func(done, total int) {
	var mu sync.Mutex
	last := -1
	return func(done, total int) {
		if total == 0 {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		pct := done * 100 / total
		if pct <= last {
			return
		}
		last = pct
		fmt.Fprintf(os.Stderr, "\rMirroring: %3d%% (%d/%d)", pct, done, total)
	}
}

func runMirrorStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()
	mcfg := mirrorConfig(cmd, cfg.Mirror)

	store, err := catalog.Read(ctx, cfg.Catalog, logg)
	if err != nil {
		return err
	}

	var client storage.Client
	if statusStorageFlag {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	spec := mirror.StatusSpec(mcfg, mirror.CollectURLs(store), client, cfg.Storage.Bucket, 0)
	opts := reconcile.Options{DoPurge: purgeFlag, DryRun: dryRunFlag}

	logg.Info("Planning mirror reconciliation...")
	plan, err := reconcile.ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printStatusReport(logg, spec, plan)

	if !purgeFlag {
		logg.Info("No actions requested. Use --purge to delete files no table references.")
		return nil
	}
	if dryRunFlag {
		logg.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		logg.Info("No actions required based on current flags.")
		return nil
	}

	if !confirmDestructiveAction() {
		logg.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	logg.Info("Applying actions...")
	executed, err := reconcile.ApplyPlan(ctx, mirror.NewPruner(mcfg, client, cfg.Storage.Bucket), plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	logg.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printStatusReport prints a formatted reconciliation report using logger.
func printStatusReport(l *zap.Logger, spec *reconcile.Spec, plan *reconcile.Plan) {
	s := plan.Summary

	fields := []zap.Field{
		zap.Int("total_items", s.TotalItems),
		zap.Int("complete", s.Complete),
		zap.Int("mismatches", s.Mismatches),
	}
	for _, src := range spec.Sources {
		fields = append(fields, zap.Int("missing_"+src.Name(), s.Missing[src.Name()]))
	}
	l.Info("Reconciliation report", fields...)

	if len(plan.Actions) == 0 {
		return
	}
	l.Info("Planned actions", zap.Int("purge_actions", s.PurgeActions))

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("source", action.Source),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
