package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-portal/internal/api/dto"
	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/service"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// DocumentsHandler manages document ingestion endpoints.
type DocumentsHandler struct {
	service *service.DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(docService *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{service: docService}
}

// List GET /api/documents.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	var scope *domain.Department
	if dept := domain.Department(c.Query("department")); dept != "" {
		if !dept.Valid() {
			return apperrors.NewValidationError("department must be HR or IT", nil)
		}
		scope = &dept
	}
	docs, err := h.service.List(c.Context(), scope)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromDocuments(docs))
}

// Create POST /api/documents. The response reflects only the store insert;
// semantic indexing runs in the background and cannot fail this call.
func (h *DocumentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	doc, err := h.service.Ingest(c.Context(), service.DocumentIngestInput{
		Department: req.Department,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromDocument(doc))
}

// Delete DELETE /api/documents/:id.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	doc, err := h.service.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted": dto.FromDocument(doc)})
}
