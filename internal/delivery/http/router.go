package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusservice/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	studentController *controllers.StudentController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	requestController *controllers.RequestController,
	reportController *controllers.ReportController,
	seedController *controllers.SeedController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Students
	mux.HandleFunc("POST /api/students", studentController.CreateStudent)
	mux.HandleFunc("GET /api/students", studentController.ListStudents)

	// Events. The literal /summary route must be registered alongside the
	// {eventID} wildcard routes; ServeMux prefers the more specific pattern.
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/summary", reportController.EventSummaries)
	mux.HandleFunc("GET /api/events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("GET /api/events/{eventID}/summary", reportController.EventSummary)
	mux.HandleFunc("GET /api/events/{eventID}/registrations", registrationController.ListEventRegistrations)

	// Registrations
	mux.HandleFunc("POST /api/registrations", registrationController.CreateRegistration)

	// Service requests
	mux.HandleFunc("POST /api/requests", requestController.CreateServiceRequest)
	mux.HandleFunc("GET /api/requests", requestController.ListServiceRequests)
	mux.HandleFunc("PATCH /api/requests/{requestID}", requestController.UpdateRequestStatus)
	mux.HandleFunc("GET /api/requests/report", reportController.RequestStatusReport)

	// Reports
	mux.HandleFunc("GET /api/conflicts", reportController.ConflictReport)

	// Demo data
	mux.HandleFunc("POST /api/mock/seed", seedController.Seed)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
