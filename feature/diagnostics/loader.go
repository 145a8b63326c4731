package diagnostics

import (
	"app-reconciler/core/extract"
	"app-reconciler/core/netskope"
	"app-reconciler/core/sheet"
	"app-reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new diagnostics feature.
func NewFeature(client netskope.Client, keys extract.KeySet, sheetCfg sheet.Config, storageClient storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(client, keys, sheetCfg, storageClient, bucket, db, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "diagnostics"
}

// IsEnabled checks if the feature is enabled. Diagnostics has no hard
// dependencies; unconfigured ones report skipped.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
