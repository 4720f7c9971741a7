package service

import (
	"context"
	"strings"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/events"
	"github.com/spec-kit/company-portal/internal/repository"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// HRService is the HR department view: it owns the HR tables and emits one
// event per successful mutation.
type HRService struct {
	employees  repository.EmployeeRepository
	policies   repository.PolicyRepository
	reports    repository.ReportRepository
	dispatcher events.Dispatcher
}

// HRDependencies bundles repositories for the HR view.
type HRDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	PolicyRepo   repository.PolicyRepository
	ReportRepo   repository.ReportRepository
	Dispatcher   events.Dispatcher
}

// NewHRService constructs the service.
func NewHRService(deps HRDependencies) *HRService {
	return &HRService{
		employees:  deps.EmployeeRepo,
		policies:   deps.PolicyRepo,
		reports:    deps.ReportRepo,
		dispatcher: deps.Dispatcher,
	}
}

// ListEmployees returns employees newest-first.
func (s *HRService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// AddEmployee creates a directory entry.
func (s *HRService) AddEmployee(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	if strings.TrimSpace(emp.Name) == "" || strings.TrimSpace(emp.Email) == "" {
		return nil, apperrors.NewValidationError("name and email required", nil)
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEmployeeAdded,
		Department: domain.DepartmentHR,
		Payload:    events.RecordPayload{ID: emp.ID, Label: emp.Name},
	})
	return emp, nil
}

// DeleteEmployee removes a directory entry.
func (s *HRService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEmployeeDeleted,
		Department: domain.DepartmentHR,
		Payload:    events.RecordPayload{ID: id},
	})
	return nil
}

// ListPolicies returns policies newest-first.
func (s *HRService) ListPolicies(ctx context.Context) ([]domain.Policy, error) {
	return s.policies.List(ctx)
}

// AddPolicy creates a policy record.
func (s *HRService) AddPolicy(ctx context.Context, policy *domain.Policy) (*domain.Policy, error) {
	if strings.TrimSpace(policy.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if policy.Status == "" {
		policy.Status = "Active"
	}
	if err := s.policies.Create(ctx, policy); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventPolicyAdded,
		Department: domain.DepartmentHR,
		Payload:    events.RecordPayload{ID: policy.ID, Label: policy.Title},
	})
	return policy, nil
}

// DeletePolicy removes a policy record.
func (s *HRService) DeletePolicy(ctx context.Context, id int64) error {
	if err := s.policies.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventPolicyDeleted,
		Department: domain.DepartmentHR,
		Payload:    events.RecordPayload{ID: id},
	})
	return nil
}

// ListReports returns reports newest-first.
func (s *HRService) ListReports(ctx context.Context) ([]domain.Report, error) {
	return s.reports.List(ctx)
}

// AddReport creates a report record.
func (s *HRService) AddReport(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	if strings.TrimSpace(report.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if report.Status == "" {
		report.Status = "Generated"
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventReportAdded,
		Department: domain.DepartmentHR,
		Payload:    events.RecordPayload{ID: report.ID, Label: report.Title},
	})
	return report, nil
}

// DeleteReport removes a report record.
func (s *HRService) DeleteReport(ctx context.Context, id int64) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventReportDeleted,
		Department: domain.DepartmentHR,
		Payload:    events.RecordPayload{ID: id},
	})
	return nil
}
