package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/company-portal/internal/api/http"
	"github.com/spec-kit/company-portal/internal/api/http/handlers"
	"github.com/spec-kit/company-portal/internal/auth"
	"github.com/spec-kit/company-portal/internal/config"
	"github.com/spec-kit/company-portal/internal/events"
	"github.com/spec-kit/company-portal/internal/observability"
	"github.com/spec-kit/company-portal/internal/persistence"
	"github.com/spec-kit/company-portal/internal/repository"
	"github.com/spec-kit/company-portal/internal/semantic"
	"github.com/spec-kit/company-portal/internal/service"
	"github.com/spec-kit/company-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	// The fan-out channel rides Redis pub/sub when Redis answers; otherwise
	// events stay in-process. Either way producers fire and forget.
	var dispatcher events.Dispatcher
	if redis.Available(ctx) {
		dispatcher = events.NewRedisDispatcher(redis.Client, logger)
	} else {
		logger.Warn("redis unavailable; using in-memory event dispatcher")
		dispatcher = events.NewInMemoryDispatcher()
	}

	pool := pg.PoolHandle()
	changeRequestRepo := repository.NewChangeRequestRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	policyRepo := repository.NewPolicyRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	systemRepo := repository.NewSystemRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)
	credentialRepo := repository.NewCredentialRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	indexClient := semantic.NewClient(cfg.Semantic.BaseURL, cfg.Semantic.DispatchTimeout())

	changeRequestService := service.NewChangeRequestService(changeRequestRepo, dispatcher)
	documentService := service.NewDocumentService(documentRepo, indexClient, logger, cfg.Semantic.DispatchTimeout())
	hrService := service.NewHRService(service.HRDependencies{
		EmployeeRepo: employeeRepo,
		PolicyRepo:   policyRepo,
		ReportRepo:   reportRepo,
		Dispatcher:   dispatcher,
	})
	itService := service.NewITService(service.ITDependencies{
		TicketRepo:      ticketRepo,
		SystemRepo:      systemRepo,
		MaintenanceRepo: maintenanceRepo,
		Dispatcher:      dispatcher,
	})
	statsService := service.NewStatsService(statsRepo)
	authService := service.NewAuthService(cfg.Auth, credentialRepo)

	aggregator := service.NewNotificationAggregator(statsService, changeRequestService, logger, cfg.Notifications.LogCap)
	worker.StartAggregator(aggregator, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		ChangeRequests: handlers.NewChangeRequestsHandler(changeRequestService),
		Documents:      handlers.NewDocumentsHandler(documentService),
		HR:             handlers.NewHRHandler(hrService),
		IT:             handlers.NewITHandler(itService),
		Stats:          handlers.NewStatsHandler(statsService),
		Notifications:  handlers.NewNotificationsHandler(aggregator),
		AuthMiddleware: authMiddleware,
		AuthRequired:   cfg.Auth.Required,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	documentService.Drain()
	aggregator.Flush()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
