package dto

import (
	"time"

	"github.com/spec-kit/company-portal/internal/domain"
)

// CreateDocumentRequest payload.
type CreateDocumentRequest struct {
	Department domain.Department `json:"department"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
}

// DocumentResponse response.
type DocumentResponse struct {
	ID         int64             `json:"id"`
	Department domain.Department `json:"department"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// FromDocument maps the domain record.
func FromDocument(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		Department: doc.Department,
		Title:      doc.Title,
		Content:    doc.Content,
		CreatedAt:  doc.CreatedAt,
	}
}

// FromDocuments maps a list.
func FromDocuments(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, FromDocument(&docs[i]))
	}
	return out
}
