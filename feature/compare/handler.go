package compare

import (
	"errors"

	"app-reconciler/core/extract"
	"app-reconciler/core/history"
	"app-reconciler/core/logger"
	"app-reconciler/core/netskope"
	"app-reconciler/core/sheet"
	"app-reconciler/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RunList is the JSON shape of the run-history listing.
type RunList struct {
	// Count is the number of rows returned.
	Count int `json:"count"`
	// Runs are the ledger rows, newest first.
	Runs []history.RunRecord `json:"runs"`
}

// Handler handles HTTP requests for comparison runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/run", h.HandleRun)
	group.Get("/preview", h.HandlePreview)
	group.Get("/runs", h.HandleRuns)
}

// HandleRun executes a full comparison run.
// @Summary Run Comparison
// @Description Reconciles the spreadsheet against the cloud inventory, publishes the three comparison artifacts and records the run in the ledger.
// @Tags compare
// @Accept json
// @Produce json
// @Success 200 {object} compare.RunReport "Run summary"
// @Failure 422 {object} map[string]string "Worksheet or column not found"
// @Failure 502 {object} map[string]string "Upstream inventory failure"
// @Failure 500 {object} map[string]string "Publish failure"
// @Router /compare/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Comparison run requested")

	run, err := h.service.Run(c.Context(), history.TriggerAPI)
	if err != nil {
		l.Error("Comparison run failed", zap.Error(err))
		return c.Status(failureStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(run)
}

// HandlePreview reconciles both sources without publishing.
// @Summary Preview Comparison
// @Description Reconciles the spreadsheet against the cloud inventory and returns the result without publishing artifacts or touching the ledger.
// @Tags compare
// @Accept json
// @Produce json
// @Success 200 {object} compare.Outcome "Reconciliation result"
// @Failure 422 {object} map[string]string "Worksheet or column not found"
// @Failure 502 {object} map[string]string "Upstream inventory failure"
// @Router /compare/preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	outcome, err := h.service.Preview(c.Context())
	if err != nil {
		l.Error("Comparison preview failed", zap.Error(err))
		return c.Status(failureStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(outcome)
}

// HandleRuns lists recent ledger rows.
// @Summary List Recent Runs
// @Description Returns the most recent comparison runs from the history ledger, newest first.
// @Tags compare
// @Accept json
// @Produce json
// @Param limit query int false "Maximum rows to return"
// @Success 200 {object} compare.RunList "Recent runs"
// @Failure 503 {object} map[string]string "History is not configured"
// @Router /compare/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if !h.service.HasHistory() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "run history is not configured",
		})
	}

	runs, err := h.service.Recent(c.Context(), utils.ToInt(c.Query("limit")))
	if err != nil {
		l.Error("History listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(RunList{Count: len(runs), Runs: runs})
}

// failureStatus maps a run failure to a response status. Upstream API
// answers and undecodable bodies are a bad gateway. A missing worksheet or
// column is unprocessable; anything else is internal.
func failureStatus(err error) int {
	var transportErr *netskope.TransportError
	var parseErr *extract.ParseError
	if errors.As(err, &transportErr) || errors.As(err, &parseErr) {
		return fiber.StatusBadGateway
	}
	var notFoundErr *sheet.NotFoundError
	if errors.As(err, &notFoundErr) {
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
