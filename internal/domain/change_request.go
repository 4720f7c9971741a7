package domain

import "time"

// Department identifies which portal view owns a record.
type Department string

const (
	DepartmentHR Department = "HR"
	DepartmentIT Department = "IT"
)

// Valid reports whether the department is one of the known views.
func (d Department) Valid() bool {
	return d == DepartmentHR || d == DepartmentIT
}

// RequestStatus enumerates lifecycle states for change requests.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "Pending"
	RequestStatusInProgress RequestStatus = "InProgress"
	RequestStatusCompleted  RequestStatus = "Completed"
	RequestStatusCancelled  RequestStatus = "Cancelled"
)

// Known reports whether the value is part of the status enumeration.
func (s RequestStatus) Known() bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// ChangeRequest is an administrative task routed to a department and
// tracked through a fixed lifecycle.
type ChangeRequest struct {
	ID          int64
	Department  Department
	Type        string
	Description string
	Status      RequestStatus
	RequestedBy string
	Notes       *string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
