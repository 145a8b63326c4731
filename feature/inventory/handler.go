package inventory

import (
	"errors"

	"app-reconciler/core/extract"
	"app-reconciler/core/logger"
	"app-reconciler/core/netskope"
	"app-reconciler/core/report"
	"app-reconciler/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ApplicationList is the JSON shape of the inventory listing.
type ApplicationList struct {
	// Count is the number of distinct applications.
	Count int `json:"count"`
	// Applications are the extracted entities, sorted by normalized name.
	Applications []extract.Entity `json:"applications"`
}

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/applications", h.HandleListApplications)
	group.Get("/applications.csv", h.HandleApplicationsCSV)
}

// HandleListApplications returns the extracted application inventory.
// @Summary List Applications
// @Description Returns every application extracted from the cloud inventory together with its destination hostnames. Served from a short-lived cache.
// @Tags inventory
// @Accept json
// @Produce json
// @Param refresh query boolean false "Drop the cache and refetch"
// @Success 200 {object} inventory.ApplicationList "Extracted applications"
// @Failure 502 {object} map[string]string "Upstream inventory failure"
// @Router /inventory/applications [get]
func (h *Handler) HandleListApplications(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if utils.ToBool(c.Query("refresh")) {
		h.service.Invalidate()
	}

	entities, err := h.service.Entities(c.Context())
	if err != nil {
		l.Error("Inventory fetch failed", zap.Error(err))
		return c.Status(upstreamStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(ApplicationList{Count: len(entities), Applications: entities})
}

// HandleApplicationsCSV returns the inventory as a CSV download.
// @Summary Download Applications CSV
// @Description Returns the extracted application table as a CSV file, hosts joined with ", ".
// @Tags inventory
// @Produce plain
// @Success 200 {string} string "CSV content"
// @Failure 502 {object} map[string]string "Upstream inventory failure"
// @Router /inventory/applications.csv [get]
func (h *Handler) HandleApplicationsCSV(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	entities, err := h.service.Entities(c.Context())
	if err != nil {
		l.Error("Inventory fetch failed", zap.Error(err))
		return c.Status(upstreamStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, report.ContentTypeCSV)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="apps_and_hosts.csv"`)
	return c.SendString(report.Delimited(report.EntityTable(entities)))
}

// upstreamStatus maps an inventory failure to a response status: upstream
// API answers and undecodable bodies are a bad gateway, everything else an
// internal error.
func upstreamStatus(err error) int {
	var transportErr *netskope.TransportError
	var parseErr *extract.ParseError
	if errors.As(err, &transportErr) || errors.As(err, &parseErr) {
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
