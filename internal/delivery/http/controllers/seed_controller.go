package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"campusservice/internal/delivery/http/helpers"
	"campusservice/internal/domain"
)

// SeedController loads a deterministic demo dataset through the regular
// services. Seeding is idempotent: entities whose ids already exist are
// skipped, not duplicated.
type SeedController struct {
	Logger        *slog.Logger
	Students      domain.StudentService
	Events        domain.EventService
	Registrations domain.RegistrationService
	Requests      domain.ServiceRequestService
	Reports       domain.ReportService
}

func NewSeedController(
	logger *slog.Logger,
	students domain.StudentService,
	events domain.EventService,
	registrations domain.RegistrationService,
	requests domain.ServiceRequestService,
	reports domain.ReportService,
) *SeedController {
	return &SeedController{
		Logger:        logger,
		Students:      students,
		Events:        events,
		Registrations: registrations,
		Requests:      requests,
		Reports:       reports,
	}
}

// SeedResponse is the payload returned by POST /api/mock/seed.
type SeedResponse struct {
	Inserted  map[string]int              `json:"inserted"`
	Events    []*domain.EventSummary      `json:"events"`
	Conflicts []*domain.ConflictEntry     `json:"conflicts"`
	Requests  *domain.RequestStatusReport `json:"requests"`
}

// Seed godoc
// @Summary Seed deterministic demo data
// @Description Inserts sample students, events (including one intentional venue overlap), registrations (including one waitlist), and service requests. Existing ids are skipped.
// @Tags mock
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/mock/seed [post]
func (c *SeedController) Seed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	inserted := map[string]int{"students": 0, "events": 0, "registrations": 0, "requests": 0}

	for _, s := range seedStudents() {
		if err := c.Students.AddStudent(ctx, s); err == nil {
			inserted["students"]++
		} else if !errors.Is(err, domain.ErrDuplicateID) {
			c.fail(w, r, err)
			return
		}
	}
	for _, e := range seedEvents() {
		if _, err := c.Events.AddEvent(ctx, e); err == nil {
			inserted["events"]++
		} else if !errors.Is(err, domain.ErrDuplicateID) {
			c.fail(w, r, err)
			return
		}
	}
	for _, pair := range seedRegistrations() {
		if _, err := c.Registrations.Register(ctx, pair[0], pair[1]); err == nil {
			inserted["registrations"]++
		} else if !errors.Is(err, domain.ErrDuplicateRegistration) && !errors.Is(err, domain.ErrNotFound) {
			c.fail(w, r, err)
			return
		}
	}
	if n, err := c.seedRequests(ctx); err != nil {
		c.fail(w, r, err)
		return
	} else {
		inserted["requests"] = n
	}

	summaries, err := c.Reports.EventSummaries(ctx)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	conflicts, err := c.Reports.ConflictReport(ctx)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	requestReport, err := c.Reports.RequestStatusReport(ctx)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, SeedResponse{
		Inserted:  inserted,
		Events:    summaries,
		Conflicts: conflicts,
		Requests:  requestReport,
	})
}

// seedRequests creates the demo service requests and walks two of them
// forward so all three lifecycle states show up in the report.
func (c *SeedController) seedRequests(ctx context.Context) (int, error) {
	type seedRequest struct {
		id, studentID, category, location, target string
	}
	rows := []seedRequest{
		{"R001", "S01", "Hostel Maintenance", "Hostel Block A", domain.RequestOpen},
		{"R002", "S02", "Library Access", "Central Library", domain.RequestInProgress},
		{"R003", "S03", "Counseling", "Student Center", domain.RequestResolved},
	}
	inserted := 0
	for _, row := range rows {
		req := &domain.ServiceRequest{
			ID:        row.id,
			StudentID: row.studentID,
			Category:  row.category,
			Location:  row.location,
		}
		if _, err := c.Requests.CreateRequest(ctx, req); err != nil {
			if errors.Is(err, domain.ErrDuplicateID) {
				continue
			}
			return inserted, err
		}
		inserted++
		if row.target == domain.RequestInProgress || row.target == domain.RequestResolved {
			if _, err := c.Requests.UpdateStatus(ctx, row.id, domain.RequestInProgress); err != nil {
				return inserted, err
			}
		}
		if row.target == domain.RequestResolved {
			if _, err := c.Requests.UpdateStatus(ctx, row.id, domain.RequestResolved); err != nil {
				return inserted, err
			}
		}
	}
	return inserted, nil
}

func (c *SeedController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "seed failed", "path", r.URL.Path, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}

func seedStudents() []*domain.Student {
	var zero time.Time
	return []*domain.Student{
		domain.NewStudent("S01", "Alice Johnson", "CSE", 3, "alice@example.com", zero),
		domain.NewStudent("S02", "Bob Smith", "ECE", 2, "bob@example.com", zero),
		domain.NewStudent("S03", "Carol Lee", "ME", 1, "carol@example.com", zero),
		domain.NewStudent("S04", "David Kim", "EEE", 4, "david@example.com", zero),
		domain.NewStudent("S05", "Eve Patel", "Robotics", 3, "eve@example.com", zero),
		domain.NewStudent("S06", "Frank Liu", "Literature", 2, "frank@example.com", zero),
		domain.NewStudent("S07", "Grace Chen", "CSE", 1, "grace@example.com", zero),
		domain.NewStudent("S08", "Henry Park", "CIV", 3, "henry@example.com", zero),
	}
}

func seedEvents() []*domain.Event {
	return []*domain.Event{
		domain.NewEvent("E101", "AI Workshop", "AI Club", "2025-09-20", "10:00", "12:00", "Seminar Hall", 50),
		// Intentional overlap with E101: same venue and date, 11:00-12:30.
		domain.NewEvent("E102", "Guitar Jam", "Music Club", "2025-09-20", "11:00", "12:30", "Seminar Hall", 30),
		domain.NewEvent("E103", "Drama Night", "Drama Club", "2025-09-22", "18:00", "20:00", "Auditorium", 100),
		domain.NewEvent("E104", "Robotics Expo", "Robotics Club", "2025-09-23", "14:00", "17:00", "Lab Block", 40),
		domain.NewEvent("E105", "Debate Comp.", "Literary Club", "2025-09-24", "15:00", "17:00", "Seminar Hall", 60),
		// Tiny capacity to demonstrate the waitlist.
		domain.NewEvent("E201", "Tiny Session", "Test Org", "2025-09-25", "09:00", "10:00", "Room 101", 1),
	}
}

func seedRegistrations() [][2]string {
	return [][2]string{
		{"S01", "E101"}, {"S02", "E101"}, {"S03", "E101"},
		{"S04", "E102"}, {"S05", "E104"}, {"S06", "E105"},
		{"S07", "E201"}, {"S08", "E201"}, // second one waitlists
	}
}
