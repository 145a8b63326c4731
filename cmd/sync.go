package cmd

import (
	"context"
	"fmt"
	"time"

	"app-reconciler/core/artifact"
	"app-reconciler/core/config"
	"app-reconciler/core/extract"
	"app-reconciler/core/logger"
	"app-reconciler/core/netskope"
	"app-reconciler/core/report"
	"app-reconciler/core/sheet"
	"app-reconciler/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sheetOut string

// syncCmd fetches the inventory and publishes the application/hosts table.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the inventory and publish the application/hosts table",
	Long: `Fetches all pages of the private application inventory, extracts every
application with its destination hostnames and publishes the table as a
CSV artifact. Optionally also writes the table as a local workbook.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&sheetOut, "sheet-out", "", "Also write the table as an xlsx workbook at this path")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
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

	l.Info("Fetching inventory")
	pages, err := client.FetchAllPages(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch inventory: %w", err)
	}

	entities := extract.Extract(pages, cfg.Extract.KeySet(), true)
	table := report.EntityTable(entities)
	l.Info("Inventory extracted",
		zap.Int("pages", len(pages)),
		zap.Int("applications", len(entities)),
	)

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	writer := artifact.NewObjectWriter(store, cfg.Storage.Bucket, cfg.Artifact.Prefix)
	if err := writer.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to prepare bucket: %w", err)
	}

	a := report.EntityArtifact(table, report.RunStamp(time.Now()))
	ref, err := writer.Write(ctx, a.Name, a.Body, a.ContentType)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", a.Name, err)
	}
	l.Info("Applications published",
		zap.String("artifact", a.Name),
		zap.String("location", ref.Location),
		zap.Int64("size", ref.Size),
	)

	if sheetOut != "" {
		if err := sheet.WriteTable(sheetOut, "Applications", table); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		l.Info("Workbook written", zap.String("path", sheetOut))
	}

	return nil
}
