package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-portal/internal/api/dto"
	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/service"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// ITHandler serves the IT department view endpoints.
type ITHandler struct {
	service *service.ITService
}

// NewITHandler constructs handler.
func NewITHandler(itService *service.ITService) *ITHandler {
	return &ITHandler{service: itService}
}

// ListTickets GET /api/it/tickets.
func (h *ITHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.service.ListTickets(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.FromTicket(&tickets[i]))
	}
	return c.JSON(items)
}

// CreateTicket POST /api/it/tickets.
func (h *ITHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.AddTicket(c.Context(), &domain.Ticket{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		User:        req.User,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromTicket(ticket))
}

// UpdateTicketStatus PUT /api/it/tickets/:id.
func (h *ITHandler) UpdateTicketStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdateTicketStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "ticket status updated successfully",
		"data":    dto.FromTicket(ticket),
	})
}

// DeleteTicket DELETE /api/it/tickets/:id.
func (h *ITHandler) DeleteTicket(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteTicket(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ticket deleted successfully"})
}

// ListSystems GET /api/it/systems.
func (h *ITHandler) ListSystems(c *fiber.Ctx) error {
	systems, err := h.service.ListSystems(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.SystemResponse, 0, len(systems))
	for i := range systems {
		items = append(items, dto.FromSystem(&systems[i]))
	}
	return c.JSON(items)
}

// CreateSystem POST /api/it/systems.
func (h *ITHandler) CreateSystem(c *fiber.Ctx) error {
	var req dto.CreateSystemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	system, err := h.service.AddSystem(c.Context(), &domain.System{
		Name:      req.Name,
		Status:    req.Status,
		Uptime:    req.Uptime,
		LastCheck: req.LastCheck,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSystem(system))
}

// DeleteSystem DELETE /api/it/systems/:id.
func (h *ITHandler) DeleteSystem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteSystem(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "system deleted successfully"})
}

// ListMaintenance GET /api/it/maintenance.
func (h *ITHandler) ListMaintenance(c *fiber.Ctx) error {
	windows, err := h.service.ListMaintenance(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.MaintenanceResponse, 0, len(windows))
	for i := range windows {
		items = append(items, dto.FromMaintenance(&windows[i]))
	}
	return c.JSON(items)
}

// CreateMaintenance POST /api/it/maintenance.
func (h *ITHandler) CreateMaintenance(c *fiber.Ctx) error {
	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	m, err := h.service.AddMaintenance(c.Context(), &domain.Maintenance{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMaintenance(m))
}

// DeleteMaintenance DELETE /api/it/maintenance/:id.
func (h *ITHandler) DeleteMaintenance(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteMaintenance(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "maintenance record deleted successfully"})
}
