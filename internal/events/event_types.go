package events

import (
	"time"

	"github.com/spec-kit/company-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeAdded          EventType = "employee_added"
	EventEmployeeDeleted        EventType = "employee_deleted"
	EventPolicyAdded            EventType = "policy_added"
	EventPolicyDeleted          EventType = "policy_deleted"
	EventReportAdded            EventType = "report_added"
	EventReportDeleted          EventType = "report_deleted"
	EventTicketAdded            EventType = "ticket_added"
	EventTicketDeleted          EventType = "ticket_deleted"
	EventTicketStatusChanged    EventType = "ticket_status_changed"
	EventSystemAdded            EventType = "system_added"
	EventSystemDeleted          EventType = "system_deleted"
	EventMaintenanceAdded       EventType = "maintenance_added"
	EventMaintenanceDeleted     EventType = "maintenance_deleted"
	EventChangeRequestCompleted EventType = "change_request_completed"
)

// AllEventTypes lists every kind a consumer may subscribe to.
var AllEventTypes = []EventType{
	EventEmployeeAdded,
	EventEmployeeDeleted,
	EventPolicyAdded,
	EventPolicyDeleted,
	EventReportAdded,
	EventReportDeleted,
	EventTicketAdded,
	EventTicketDeleted,
	EventTicketStatusChanged,
	EventSystemAdded,
	EventSystemDeleted,
	EventMaintenanceAdded,
	EventMaintenanceDeleted,
	EventChangeRequestCompleted,
}

// Event represents a domain event emitted by a department view. Events are
// ephemeral and never persisted; their ids only matter within one process
// lifetime.
type Event struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Department domain.Department `json:"department,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Payload    interface{}       `json:"payload"`
}

// RecordPayload describes an added or deleted entity row.
type RecordPayload struct {
	ID    int64  `json:"id"`
	Label string `json:"label,omitempty"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	ID        int64  `json:"id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// ChangeRequestCompletedPayload payload.
type ChangeRequestCompletedPayload struct {
	ID          int64                `json:"id"`
	Department  domain.Department    `json:"department"`
	Status      domain.RequestStatus `json:"status"`
	Description string               `json:"description"`
}
