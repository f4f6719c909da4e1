// Command server runs the campus event and student service API.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"campusservice/config"
	_ "campusservice/docs"
	"campusservice/internal/adapters/email"
	delivery "campusservice/internal/delivery/http"
	"campusservice/internal/delivery/http/controllers"
	"campusservice/internal/delivery/http/middleware"
	"campusservice/internal/domain"
	"campusservice/internal/repository/memory"
	"campusservice/internal/repository/postgres"
	"campusservice/internal/services"
)

// repositories groups the per-entity stores for one backend.
type repositories struct {
	students      domain.StudentRepository
	events        domain.EventRepository
	registrations domain.RegistrationRepository
	requests      domain.ServiceRequestRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	repos, cleanup, err := buildRepositories(cfg)
	if err != nil {
		logger.Error("storage init failed", "backend", cfg.DBBackend, "err", err)
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("storage ready", "backend", cfg.DBBackend)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("mailer init failed", "err", err)
		os.Exit(1)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())

	// One gate serializes every store mutation; reports share the read side.
	var storeMu sync.RWMutex
	studentSvc := services.NewStudentService(&storeMu, repos.students)
	eventSvc := services.NewEventService(&storeMu, repos.events)
	registrationSvc := services.NewRegistrationService(&storeMu, repos.students, repos.events, repos.registrations, emailSvc, logger)
	requestSvc := services.NewServiceRequestService(&storeMu, repos.students, repos.requests, emailSvc, logger)
	reportSvc := services.NewReportService(&storeMu, repos.events, repos.registrations, repos.requests)

	mux := delivery.NewRouter(
		controllers.NewStudentController(logger, studentSvc),
		controllers.NewEventController(logger, eventSvc),
		controllers.NewRegistrationController(logger, registrationSvc),
		controllers.NewRequestController(logger, requestSvc),
		controllers.NewReportController(logger, reportSvc),
		controllers.NewSeedController(logger, studentSvc, eventSvc, registrationSvc, requestSvc, reportSvc),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func buildRepositories(cfg *config.Config) (*repositories, func(), error) {
	switch cfg.DBBackend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		return &repositories{
			students:      postgres.NewStudentRepository(db),
			events:        postgres.NewEventRepository(db),
			registrations: postgres.NewRegistrationRepository(db),
			requests:      postgres.NewServiceRequestRepository(db),
		}, func() { db.Close() }, nil
	case "memory":
		return &repositories{
			students:      memory.NewStudentRepository(),
			events:        memory.NewEventRepository(),
			registrations: memory.NewRegistrationRepository(),
			requests:      memory.NewServiceRequestRepository(),
		}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown DB_BACKEND %q", cfg.DBBackend)
	}
}
