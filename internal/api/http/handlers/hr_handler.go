package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-portal/internal/api/dto"
	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/service"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// HRHandler serves the HR department view endpoints.
type HRHandler struct {
	service *service.HRService
}

// NewHRHandler constructs handler.
func NewHRHandler(hrService *service.HRService) *HRHandler {
	return &HRHandler{service: hrService}
}

// ListEmployees GET /api/hr/employees.
func (h *HRHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.service.ListEmployees(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, dto.FromEmployee(&employees[i]))
	}
	return c.JSON(items)
}

// CreateEmployee POST /api/hr/employees.
func (h *HRHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	emp, err := h.service.AddEmployee(c.Context(), &domain.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromEmployee(emp))
}

// DeleteEmployee DELETE /api/hr/employees/:id.
func (h *HRHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteEmployee(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "employee deleted successfully"})
}

// ListPolicies GET /api/hr/policies.
func (h *HRHandler) ListPolicies(c *fiber.Ctx) error {
	policies, err := h.service.ListPolicies(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PolicyResponse, 0, len(policies))
	for i := range policies {
		items = append(items, dto.FromPolicy(&policies[i]))
	}
	return c.JSON(items)
}

// CreatePolicy POST /api/hr/policies.
func (h *HRHandler) CreatePolicy(c *fiber.Ctx) error {
	var req dto.CreatePolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	policy, err := h.service.AddPolicy(c.Context(), &domain.Policy{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromPolicy(policy))
}

// DeletePolicy DELETE /api/hr/policies/:id.
func (h *HRHandler) DeletePolicy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeletePolicy(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "policy deleted successfully"})
}

// ListReports GET /api/hr/reports.
func (h *HRHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.service.ListReports(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.FromReport(&reports[i]))
	}
	return c.JSON(items)
}

// CreateReport POST /api/hr/reports.
func (h *HRHandler) CreateReport(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	report, err := h.service.AddReport(c.Context(), &domain.Report{
		Title:  req.Title,
		Date:   req.Date,
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromReport(report))
}

// DeleteReport DELETE /api/hr/reports/:id.
func (h *HRHandler) DeleteReport(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteReport(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "report deleted successfully"})
}
