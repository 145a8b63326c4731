package diagnostics

import (
	"context"

	"app-reconciler/core/extract"
	"app-reconciler/core/netskope"
	"app-reconciler/core/sheet"
	"app-reconciler/core/storage"
	"app-reconciler/feature/diagnostics/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report aggregates the doctor checks. Status is "ok" unless a check
// failed; skipped checks do not degrade it.
type Report struct {
	Status    string                 `json:"status"`
	Inventory checks.InventoryReport `json:"inventory"`
	Sheet     checks.SheetReport     `json:"sheet"`
	Storage   checks.StorageReport   `json:"storage"`
	History   checks.HistoryReport   `json:"history"`
}

// Service runs the doctor checks.
type Service struct {
	client   netskope.Client
	keys     extract.KeySet
	sheetCfg sheet.Config
	storage  storage.Client
	bucket   string
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new diagnostics service. Any dependency may be nil
// or unset; its check reports skipped.
func NewService(client netskope.Client, keys extract.KeySet, sheetCfg sheet.Config, storageClient storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		keys:     keys,
		sheetCfg: sheetCfg,
		storage:  storageClient,
		bucket:   bucket,
		db:       db,
		logger:   logger,
	}
}

// Run executes every doctor check and aggregates their statuses.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{
		Inventory: checks.Inventory(ctx, s.client, s.keys),
		Sheet:     checks.Sheet(s.sheetCfg),
		Storage:   checks.Storage(ctx, s.storage, s.bucket),
		History:   checks.History(s.db),
	}

	report.Status = checks.StatusOK
	for _, status := range []string{
		report.Inventory.Status,
		report.Sheet.Status,
		report.Storage.Status,
		report.History.Status,
	} {
		if status == checks.StatusError {
			report.Status = checks.StatusError
			break
		}
	}

	s.logger.Info("Diagnostics completed",
		zap.String("status", report.Status),
		zap.String("inventory", report.Inventory.Status),
		zap.String("sheet", report.Sheet.Status),
		zap.String("storage", report.Storage.Status),
		zap.String("history", report.History.Status),
	)
	return report
}
