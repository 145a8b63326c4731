package cmd

import (
	"context"
	"fmt"

	"app-reconciler/core/config"
	"app-reconciler/core/database"
	"app-reconciler/core/logger"
	"app-reconciler/core/netskope"
	"app-reconciler/core/storage"
	"app-reconciler/feature/diagnostics"
	"app-reconciler/feature/diagnostics/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// checkCmd runs the doctor checks against every configured dependency.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured sources and sinks",
	Long: `Probes the inventory endpoint, the spreadsheet source, the artifact
bucket and the run-history database. Unconfigured dependencies are skipped;
any failing check makes the command exit non-zero.`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var client netskope.Client
	if cfg.Netskope.Endpoint != "" {
		if client, err = netskope.NewClient(cfg.Netskope); err != nil {
			return fmt.Errorf("failed to create inventory client: %w", err)
		}
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("Failed to create storage client, storage check skipped", zap.Error(err))
		store = nil
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Database not reachable, history check skipped", zap.Error(err))
	} else {
		db = conn
	}

	svc := diagnostics.NewService(client, cfg.Extract.KeySet(), cfg.Sheet, store, cfg.Storage.Bucket, db, l)
	report := svc.Run(ctx)

	fmt.Println("\n--- Dependency Checks ---")
	printCheck("Inventory", report.Inventory.Status, report.Inventory.Error,
		fmt.Sprintf("%d applications", report.Inventory.Applications))
	printCheck("Sheet", report.Sheet.Status, report.Sheet.Error,
		fmt.Sprintf("%d names", report.Sheet.Names))
	printCheck("Storage", report.Storage.Status, report.Storage.Error,
		fmt.Sprintf("bucket %s", report.Storage.Bucket))
	historyDetail := fmt.Sprintf("table %s", report.History.Table)
	if len(report.History.MissingColumns) > 0 {
		historyDetail = fmt.Sprintf("missing columns: %v", report.History.MissingColumns)
	}
	printCheck("History", report.History.Status, report.History.Error, historyDetail)
	fmt.Println("-------------------------")

	if report.Status == checks.StatusError {
		return fmt.Errorf("dependency checks failed")
	}
	return nil
}

// printCheck prints one check line with a colored status.
func printCheck(name, status, errMsg, detail string) {
	color := "\033[32m" // Green
	switch status {
	case checks.StatusError:
		color = "\033[31m" // Red
	case checks.StatusSkipped:
		color = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"

	line := fmt.Sprintf("%-10s %s%s%s", name+":", color, status, resetColor)
	switch {
	case status == checks.StatusError && errMsg != "":
		line += " (" + errMsg + ")"
	case status == checks.StatusError:
		line += " (" + detail + ")"
	case status == checks.StatusOK:
		line += " (" + detail + ")"
	}
	fmt.Println(line)
}
