package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-portal/internal/api/http/handlers"
	"github.com/spec-kit/company-portal/internal/auth"
	"github.com/spec-kit/company-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	ChangeRequests *handlers.ChangeRequestsHandler
	Documents      *handlers.DocumentsHandler
	HR             *handlers.HRHandler
	IT             *handlers.ITHandler
	Stats          *handlers.StatsHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.AuthMiddleware
	AuthRequired   bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api")
	if cfg.AuthRequired && cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.Handle)
	}

	api.Get("/change-requests", cfg.ChangeRequests.List)
	api.Post("/change-requests", cfg.ChangeRequests.Create)
	api.Put("/change-requests/:id/complete", cfg.ChangeRequests.Complete)

	api.Get("/documents", cfg.Documents.List)
	api.Post("/documents", cfg.Documents.Create)
	api.Delete("/documents/:id", cfg.Documents.Delete)

	hr := api.Group("/hr")
	hr.Get("/employees", cfg.HR.ListEmployees)
	hr.Post("/employees", cfg.HR.CreateEmployee)
	hr.Delete("/employees/:id", cfg.HR.DeleteEmployee)
	hr.Get("/policies", cfg.HR.ListPolicies)
	hr.Post("/policies", cfg.HR.CreatePolicy)
	hr.Delete("/policies/:id", cfg.HR.DeletePolicy)
	hr.Get("/reports", cfg.HR.ListReports)
	hr.Post("/reports", cfg.HR.CreateReport)
	hr.Delete("/reports/:id", cfg.HR.DeleteReport)
	hr.Get("/change-requests", cfg.ChangeRequests.ScopedList(domain.DepartmentHR))
	hr.Put("/change-requests/:id/complete", cfg.ChangeRequests.ScopedComplete(domain.DepartmentHR))

	it := api.Group("/it")
	it.Get("/tickets", cfg.IT.ListTickets)
	it.Post("/tickets", cfg.IT.CreateTicket)
	it.Put("/tickets/:id", cfg.IT.UpdateTicketStatus)
	it.Delete("/tickets/:id", cfg.IT.DeleteTicket)
	it.Get("/systems", cfg.IT.ListSystems)
	it.Post("/systems", cfg.IT.CreateSystem)
	it.Delete("/systems/:id", cfg.IT.DeleteSystem)
	it.Get("/maintenance", cfg.IT.ListMaintenance)
	it.Post("/maintenance", cfg.IT.CreateMaintenance)
	it.Delete("/maintenance/:id", cfg.IT.DeleteMaintenance)
	it.Get("/change-requests", cfg.ChangeRequests.ScopedList(domain.DepartmentIT))
	it.Put("/change-requests/:id/complete", cfg.ChangeRequests.ScopedComplete(domain.DepartmentIT))

	api.Get("/stats", cfg.Stats.Stats)
	api.Get("/notifications", cfg.Notifications.List)
	api.Delete("/notifications", cfg.Notifications.Clear)
	api.Get("/dashboard", cfg.Notifications.Dashboard)
}
