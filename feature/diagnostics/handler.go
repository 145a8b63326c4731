package diagnostics

import (
	"app-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for diagnostics.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the diagnostics routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/diagnostics")
	group.Get("/", h.HandleDiagnostics)
}

// HandleDiagnostics runs all doctor checks.
// @Summary Run Diagnostics
// @Description Probes the inventory endpoint, the spreadsheet source, the artifact bucket and the run-history schema. Unconfigured dependencies report skipped.
// @Tags diagnostics
// @Accept json
// @Produce json
// @Success 200 {object} diagnostics.Report "Check report"
// @Router /diagnostics [get]
func (h *Handler) HandleDiagnostics(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running diagnostics")

	return c.JSON(h.service.Run(c.Context()))
}
