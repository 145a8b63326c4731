package compare

import (
	"app-reconciler/core/artifact"
	"app-reconciler/core/extract"
	"app-reconciler/core/history"
	"app-reconciler/core/netskope"
	"app-reconciler/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new compare feature.
func NewFeature(client netskope.Client, sheetCfg sheet.Config, keys extract.KeySet, writer artifact.Writer, keep int, recorder *history.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(client, sheetCfg, keys, writer, keep, recorder, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "compare"
}

// IsEnabled checks if the feature is enabled. A run needs both sources and
// a sink.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil && f.service.sheetCfg.Path != "" && f.service.writer != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
