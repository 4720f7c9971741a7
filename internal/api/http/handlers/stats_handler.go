package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-portal/internal/service"
)

// StatsHandler serves the stats reconciliation endpoint.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// Stats GET /api/stats. Counts are recomputed per call; under concurrent
// writes the set may be torn across tables.
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Compute(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
