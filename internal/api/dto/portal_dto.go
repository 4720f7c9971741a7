package dto

import (
	"time"

	"github.com/spec-kit/company-portal/internal/domain"
)

// CreateEmployeeRequest payload.
type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// EmployeeResponse response.
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromEmployee maps the domain record.
func FromEmployee(emp *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Position:   emp.Position,
		Department: emp.Department,
		Email:      emp.Email,
		CreatedAt:  emp.CreatedAt,
	}
}

// CreatePolicyRequest payload.
type CreatePolicyRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// PolicyResponse response.
type PolicyResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromPolicy maps the domain record.
func FromPolicy(policy *domain.Policy) PolicyResponse {
	return PolicyResponse{
		ID:        policy.ID,
		Title:     policy.Title,
		Content:   policy.Content,
		Status:    policy.Status,
		CreatedAt: policy.CreatedAt,
	}
}

// CreateReportRequest payload.
type CreateReportRequest struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// ReportResponse response.
type ReportResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromReport maps the domain record.
func FromReport(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:        report.ID,
		Title:     report.Title,
		Date:      report.Date,
		Status:    report.Status,
		CreatedAt: report.CreatedAt,
	}
}

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	User        string `json:"user"`
}

// UpdateTicketStatusRequest payload.
type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}

// TicketResponse response.
type TicketResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromTicket maps the domain record.
func FromTicket(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Priority:    ticket.Priority,
		Status:      ticket.Status,
		User:        ticket.User,
		CreatedAt:   ticket.CreatedAt,
	}
}

// CreateSystemRequest payload.
type CreateSystemRequest struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	LastCheck string `json:"lastCheck"`
}

// SystemResponse response.
type SystemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	LastCheck string    `json:"lastCheck"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromSystem maps the domain record.
func FromSystem(system *domain.System) SystemResponse {
	return SystemResponse{
		ID:        system.ID,
		Name:      system.Name,
		Status:    system.Status,
		Uptime:    system.Uptime,
		LastCheck: system.LastCheck,
		CreatedAt: system.CreatedAt,
	}
}

// CreateMaintenanceRequest payload.
type CreateMaintenanceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

// MaintenanceResponse response.
type MaintenanceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromMaintenance maps the domain record.
func FromMaintenance(m *domain.Maintenance) MaintenanceResponse {
	return MaintenanceResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}
