package cmd

import (
	"context"
	"fmt"

	"app-reconciler/core/artifact"
	"app-reconciler/core/config"
	"app-reconciler/core/database"
	"app-reconciler/core/extract"
	"app-reconciler/core/history"
	"app-reconciler/core/logger"
	"app-reconciler/core/netskope"
	"app-reconciler/core/reconcile"
	"app-reconciler/core/sheet"
	"app-reconciler/core/storage"
	"app-reconciler/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for compare command
	localDir     string
	highlightOut string
	dryRunFlag   bool
)

// compareCmd runs a full comparison of the spreadsheet against the inventory.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the spreadsheet against the inventory and publish reports",
	Long: `Reads the application-name column from the configured spreadsheet, fetches
the private application inventory, reconciles the two name sets and
publishes the three comparison reports: the missing-names list, the
side-by-side table and the presence matrix.

Examples:
  # Publish to the configured storage bucket
  compare

  # Write the reports to a local directory instead of storage
  compare --local-dir ./out

  # Print the summary without publishing anything
  compare --dry-run

  # Also write a copy of the workbook with missing rows highlighted
  compare --highlight highlighted.xlsx`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&localDir, "local-dir", "", "Write reports to this directory instead of storage")
	compareCmd.Flags().StringVar(&highlightOut, "highlight", "", "Write a highlighted copy of the source workbook to this path")
	compareCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print the summary without publishing")
	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := netskope.NewClient(cfg.Netskope)
	if err != nil {
		return fmt.Errorf("failed to create inventory client: %w", err)
	}

	// Pick the artifact sink: local directory or the storage bucket.
	var writer artifact.Writer
	if localDir != "" {
		writer = artifact.NewDirWriter(localDir)
	} else if !dryRunFlag {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		objWriter := artifact.NewObjectWriter(store, cfg.Storage.Bucket, cfg.Artifact.Prefix)
		if err := objWriter.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("failed to prepare bucket: %w", err)
		}
		writer = objWriter
	}

	// Connect to Database (Optional)
	var recorder *history.Recorder
	if conn, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed, run history disabled", zap.Error(err))
	} else if recorder, err = history.NewRecorder(conn); err != nil {
		l.Warn("Run history setup failed", zap.Error(err))
	}

	svc := compare.NewService(client, cfg.Sheet, cfg.Extract.KeySet(), writer, cfg.Artifact.Keep, recorder, l)

	var missing []string
	if dryRunFlag {
		outcome, err := svc.Preview(ctx)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		missing = outcome.Result.Missing
		printSummary(outcome.Summary, missing)
		fmt.Println("Dry run: nothing was published.")
	} else {
		run, err := svc.Run(ctx, history.TriggerCLI)
		if err != nil {
			return fmt.Errorf("comparison run failed: %w", err)
		}
		missing = run.Missing
		printSummary(run.Summary, missing)
		fmt.Println("Published artifacts:")
		for _, a := range run.Artifacts {
			fmt.Printf("- %s\n", a.Location)
		}
	}

	if highlightOut != "" {
		targets := make(map[string]struct{}, len(missing))
		for _, name := range missing {
			targets[extract.Normalize(name)] = struct{}{}
		}
		count, err := sheet.HighlightRows(cfg.Sheet.Path, highlightOut, cfg.Sheet.Sheet, cfg.Sheet.Column, cfg.Sheet.HasHeader, targets)
		if err != nil {
			return fmt.Errorf("failed to write highlighted workbook: %w", err)
		}
		l.Info("Highlighted workbook written",
			zap.String("path", highlightOut),
			zap.Int("rows", count),
		)
	}

	return nil
}

// printSummary prints the comparison counts and the missing names.
func printSummary(s reconcile.Summary, missing []string) {
	missingColor := "\033[32m" // Green
	if s.Missing > 0 {
		missingColor = "\033[31m" // Red
	}
	resetColor := "\033[0m"

	fmt.Println("\n--- Comparison Summary ---")
	fmt.Printf("File names:     %d\n", s.FileNames)
	fmt.Printf("Cloud names:    %d\n", s.CloudNames)
	fmt.Printf("Missing:        %s%d%s\n", missingColor, s.Missing, resetColor)
	fmt.Printf("Cloud only:     %d\n", s.CloudOnly)
	fmt.Printf("Union:          %d\n", s.Union)
	fmt.Println("--------------------------")

	if len(missing) > 0 {
		fmt.Println("Missing from inventory:")
		for _, name := range missing {
			fmt.Printf("- %s\n", name)
		}
		fmt.Println("--------------------------")
	}
}
