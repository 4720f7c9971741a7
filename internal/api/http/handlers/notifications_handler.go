package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-portal/internal/api/dto"
	"github.com/spec-kit/company-portal/internal/service"
)

// NotificationsHandler exposes the host aggregator's local state.
type NotificationsHandler struct {
	aggregator *service.NotificationAggregator
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(aggregator *service.NotificationAggregator) *NotificationsHandler {
	return &NotificationsHandler{aggregator: aggregator}
}

// List GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.aggregator.Recent())
}

// Clear DELETE /api/notifications. Local only; the store is untouched.
func (h *NotificationsHandler) Clear(c *fiber.Ctx) error {
	h.aggregator.Clear()
	return c.JSON(fiber.Map{"message": "notifications cleared"})
}

// Dashboard GET /api/dashboard returns the last re-pulled aggregate view.
func (h *NotificationsHandler) Dashboard(c *fiber.Ctx) error {
	stats, requests := h.aggregator.Snapshot()
	return c.JSON(fiber.Map{
		"stats":          stats,
		"changeRequests": dto.FromChangeRequests(requests),
		"notifications":  h.aggregator.Recent(),
	})
}
