package service

import (
	"context"
	"strings"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/events"
	"github.com/spec-kit/company-portal/internal/repository"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// ITService is the IT department view: it owns the IT tables and emits one
// event per successful mutation.
type ITService struct {
	tickets     repository.TicketRepository
	systems     repository.SystemRepository
	maintenance repository.MaintenanceRepository
	dispatcher  events.Dispatcher
}

// ITDependencies bundles repositories for the IT view.
type ITDependencies struct {
	TicketRepo      repository.TicketRepository
	SystemRepo      repository.SystemRepository
	MaintenanceRepo repository.MaintenanceRepository
	Dispatcher      events.Dispatcher
}

// NewITService constructs the service.
func NewITService(deps ITDependencies) *ITService {
	return &ITService{
		tickets:     deps.TicketRepo,
		systems:     deps.SystemRepo,
		maintenance: deps.MaintenanceRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// ListTickets returns tickets newest-first.
func (s *ITService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// AddTicket creates a support ticket.
func (s *ITService) AddTicket(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	if strings.TrimSpace(ticket.Title) == "" || strings.TrimSpace(ticket.Description) == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}
	if ticket.Priority == "" {
		ticket.Priority = "Medium"
	}
	if ticket.Status == "" {
		ticket.Status = "Open"
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventTicketAdded,
		Department: domain.DepartmentIT,
		Payload:    events.RecordPayload{ID: ticket.ID, Label: ticket.Title},
	})
	return ticket, nil
}

// UpdateTicketStatus writes a new status on an existing ticket.
func (s *ITService) UpdateTicketStatus(ctx context.Context, id int64, status string) (*domain.Ticket, error) {
	if strings.TrimSpace(status) == "" {
		return nil, apperrors.NewValidationError("status required", nil)
	}
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := ticket.Status
	if err := s.tickets.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	ticket.Status = status
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventTicketStatusChanged,
		Department: domain.DepartmentIT,
		Payload: events.TicketStatusChangedPayload{
			ID:        id,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket, nil
}

// DeleteTicket removes a support ticket.
func (s *ITService) DeleteTicket(ctx context.Context, id int64) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventTicketDeleted,
		Department: domain.DepartmentIT,
		Payload:    events.RecordPayload{ID: id},
	})
	return nil
}

// ListSystems returns systems newest-first.
func (s *ITService) ListSystems(ctx context.Context) ([]domain.System, error) {
	return s.systems.List(ctx)
}

// AddSystem creates a monitored system record.
func (s *ITService) AddSystem(ctx context.Context, system *domain.System) (*domain.System, error) {
	if strings.TrimSpace(system.Name) == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	if system.Status == "" {
		system.Status = "Online"
	}
	if system.Uptime == "" {
		system.Uptime = "100%"
	}
	if system.LastCheck == "" {
		system.LastCheck = "Just now"
	}
	if err := s.systems.Create(ctx, system); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventSystemAdded,
		Department: domain.DepartmentIT,
		Payload:    events.RecordPayload{ID: system.ID, Label: system.Name},
	})
	return system, nil
}

// DeleteSystem removes a monitored system record.
func (s *ITService) DeleteSystem(ctx context.Context, id int64) error {
	if err := s.systems.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventSystemDeleted,
		Department: domain.DepartmentIT,
		Payload:    events.RecordPayload{ID: id},
	})
	return nil
}

// ListMaintenance returns maintenance windows newest-first.
func (s *ITService) ListMaintenance(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenance.List(ctx)
}

// AddMaintenance schedules a maintenance window.
func (s *ITService) AddMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	if strings.TrimSpace(m.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if m.Status == "" {
		m.Status = "Scheduled"
	}
	if err := s.maintenance.Create(ctx, m); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventMaintenanceAdded,
		Department: domain.DepartmentIT,
		Payload:    events.RecordPayload{ID: m.ID, Label: m.Title},
	})
	return m, nil
}

// DeleteMaintenance removes a maintenance window.
func (s *ITService) DeleteMaintenance(ctx context.Context, id int64) error {
	if err := s.maintenance.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventMaintenanceDeleted,
		Department: domain.DepartmentIT,
		Payload:    events.RecordPayload{ID: id},
	})
	return nil
}
