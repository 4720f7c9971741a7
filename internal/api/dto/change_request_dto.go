package dto

import (
	"time"

	"github.com/spec-kit/company-portal/internal/domain"
)

// CreateChangeRequestRequest payload.
type CreateChangeRequestRequest struct {
	Department  domain.Department `json:"department"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	RequestedBy string            `json:"requestedBy"`
}

// CompleteChangeRequestRequest payload.
type CompleteChangeRequestRequest struct {
	Status domain.RequestStatus `json:"status"`
	Notes  *string              `json:"notes"`
}

// ChangeRequestResponse response.
type ChangeRequestResponse struct {
	ID          int64                `json:"id"`
	Department  domain.Department    `json:"department"`
	Type        string               `json:"type"`
	Description string               `json:"description"`
	Status      domain.RequestStatus `json:"status"`
	RequestedBy string               `json:"requestedBy"`
	Notes       *string              `json:"notes"`
	CreatedAt   time.Time            `json:"createdAt"`
	CompletedAt *time.Time           `json:"completedAt"`
}

// FromChangeRequest maps the domain record.
func FromChangeRequest(req *domain.ChangeRequest) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:          req.ID,
		Department:  req.Department,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
		RequestedBy: req.RequestedBy,
		Notes:       req.Notes,
		CreatedAt:   req.CreatedAt,
		CompletedAt: req.CompletedAt,
	}
}

// FromChangeRequests maps a list.
func FromChangeRequests(reqs []domain.ChangeRequest) []ChangeRequestResponse {
	out := make([]ChangeRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, FromChangeRequest(&reqs[i]))
	}
	return out
}
