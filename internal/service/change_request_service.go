package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/events"
	"github.com/spec-kit/company-portal/internal/repository"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

const defaultRequestedBy = "Admin"

// ChangeRequestService coordinates the change-request workflow.
type ChangeRequestService struct {
	requests   repository.ChangeRequestRepository
	dispatcher events.Dispatcher
}

// NewChangeRequestService constructs the service.
func NewChangeRequestService(requests repository.ChangeRequestRepository, dispatcher events.Dispatcher) *ChangeRequestService {
	return &ChangeRequestService{requests: requests, dispatcher: dispatcher}
}

// ChangeRequestCreateInput describes the creation payload.
type ChangeRequestCreateInput struct {
	Department  domain.Department
	Type        string
	Description string
	RequestedBy string
}

// Create records a new pending change request.
func (s *ChangeRequestService) Create(ctx context.Context, input ChangeRequestCreateInput) (*domain.ChangeRequest, error) {
	if !input.Department.Valid() {
		return nil, apperrors.NewValidationError("department must be HR or IT", nil)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	requestedBy := strings.TrimSpace(input.RequestedBy)
	if requestedBy == "" {
		requestedBy = defaultRequestedBy
	}

	req := &domain.ChangeRequest{
		Department:  input.Department,
		Type:        strings.TrimSpace(input.Type),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.RequestStatusPending,
		RequestedBy: requestedBy,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// List returns change requests newest-first, optionally filtered to one
// department.
func (s *ChangeRequestService) List(ctx context.Context, department *domain.Department) ([]domain.ChangeRequest, error) {
	return s.requests.List(ctx, department)
}

// Transition moves a request along one of the allowed lifecycle edges. A
// non-nil scope restricts the call to that department's rows; out-of-scope
// ids report not found so one view can never observe another's requests.
func (s *ChangeRequestService) Transition(ctx context.Context, scope *domain.Department, id int64, target domain.RequestStatus, notes *string) (*domain.ChangeRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scope != nil && req.Department != *scope {
		return nil, apperrors.NewNotFound("change request", map[string]any{"id": id})
	}
	if !isValidTransition(req.Status, target) {
		return nil, apperrors.NewInvalidTransition("status transition not allowed", map[string]any{
			"from": req.Status,
			"to":   target,
		})
	}

	req.Status = target
	if notes != nil {
		req.Notes = notes
	}
	if target.Terminal() {
		now := time.Now()
		req.CompletedAt = &now
	}
	if err := s.requests.UpdateStatus(ctx, req); err != nil {
		return nil, err
	}

	if target.Terminal() {
		publish(ctx, s.dispatcher, events.Event{
			Type:       events.EventChangeRequestCompleted,
			Department: req.Department,
			Payload: events.ChangeRequestCompletedPayload{
				ID:          req.ID,
				Department:  req.Department,
				Status:      req.Status,
				Description: req.Description,
			},
		})
	}
	return req, nil
}

// The only edges a request may travel. Everything else, including no-ops and
// transitions out of Completed or Cancelled, is rejected.
var allowedTransitions = map[domain.RequestStatus][]domain.RequestStatus{
	domain.RequestStatusPending:    {domain.RequestStatusInProgress, domain.RequestStatusCompleted, domain.RequestStatusCancelled},
	domain.RequestStatusInProgress: {domain.RequestStatusCompleted, domain.RequestStatusCancelled},
	domain.RequestStatusCompleted:  {},
	domain.RequestStatusCancelled:  {},
}

func isValidTransition(current, next domain.RequestStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

