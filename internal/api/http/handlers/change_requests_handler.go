package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-portal/internal/api/dto"
	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/service"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// ChangeRequestsHandler manages change-request endpoints.
type ChangeRequestsHandler struct {
	service *service.ChangeRequestService
}

// NewChangeRequestsHandler constructs handler.
func NewChangeRequestsHandler(crService *service.ChangeRequestService) *ChangeRequestsHandler {
	return &ChangeRequestsHandler{service: crService}
}

// List GET /api/change-requests.
func (h *ChangeRequestsHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

// Create POST /api/change-requests.
func (h *ChangeRequestsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateChangeRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	created, err := h.service.Create(c.Context(), service.ChangeRequestCreateInput{
		Department:  req.Department,
		Type:        req.Type,
		Description: req.Description,
		RequestedBy: req.RequestedBy,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromChangeRequest(created))
}

// Complete PUT /api/change-requests/:id/complete.
func (h *ChangeRequestsHandler) Complete(c *fiber.Ctx) error {
	return h.complete(c, nil)
}

// ScopedList serves a single department's slice of the table.
func (h *ChangeRequestsHandler) ScopedList(department domain.Department) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.list(c, &department)
	}
}

// ScopedComplete restricts transitions to the department's own requests.
// The scope is applied server-side; the view is untrusted.
func (h *ChangeRequestsHandler) ScopedComplete(department domain.Department) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.complete(c, &department)
	}
}

func (h *ChangeRequestsHandler) list(c *fiber.Ctx, scope *domain.Department) error {
	requests, err := h.service.List(c.Context(), scope)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromChangeRequests(requests))
}

func (h *ChangeRequestsHandler) complete(c *fiber.Ctx, scope *domain.Department) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.CompleteChangeRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Status.Known() {
		return apperrors.NewValidationError("status must be one of Pending, InProgress, Completed, Cancelled", nil)
	}
	updated, err := h.service.Transition(c.Context(), scope, id, req.Status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "change request updated successfully",
		"data":    dto.FromChangeRequest(updated),
	})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}
