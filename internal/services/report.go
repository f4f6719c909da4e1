package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"campusservice/internal/domain"
)

// maxRequestExamples caps the per-status samples in the request report.
const maxRequestExamples = 3

type reportService struct {
	mu            *sync.RWMutex
	events        domain.EventRepository
	registrations domain.RegistrationRepository
	requests      domain.ServiceRequestRepository
}

// NewReportService creates a ReportService. Reports take the read side of
// the store-wide gate: they may run concurrently with each other but
// serialize against mutations.
func NewReportService(
	mu *sync.RWMutex,
	events domain.EventRepository,
	registrations domain.RegistrationRepository,
	requests domain.ServiceRequestRepository,
) domain.ReportService {
	return &reportService{
		mu:            mu,
		events:        events,
		registrations: registrations,
		requests:      requests,
	}
}

func (s *reportService) EventSummary(ctx context.Context, eventID string) (*domain.EventSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.summarize(ctx, event)
}

func (s *reportService) EventSummaries(ctx context.Context) ([]*domain.EventSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	summaries := make([]*domain.EventSummary, 0, len(events))
	for _, event := range events {
		summary, err := s.summarize(ctx, event)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *reportService) ConflictReport(ctx context.Context) ([]*domain.ConflictEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	entries := []*domain.ConflictEntry{}
	for _, event := range events {
		if event.IsValid || len(event.Violations) == 0 {
			continue
		}
		violations := make([]string, len(event.Violations))
		copy(violations, event.Violations)
		entries = append(entries, &domain.ConflictEntry{
			EventID:    event.ID,
			Violations: violations,
		})
	}
	return entries, nil
}

func (s *reportService) RequestStatusReport(ctx context.Context) (*domain.RequestStatusReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}

	report := &domain.RequestStatusReport{
		Counts: map[string]int{
			domain.RequestOpen:       0,
			domain.RequestInProgress: 0,
			domain.RequestResolved:   0,
		},
		Examples: map[string][]domain.RequestExample{
			domain.RequestOpen:       {},
			domain.RequestInProgress: {},
			domain.RequestResolved:   {},
		},
	}
	for _, req := range requests {
		if _, ok := report.Counts[req.Status]; !ok {
			continue
		}
		report.Counts[req.Status]++
		if len(report.Examples[req.Status]) < maxRequestExamples {
			report.Examples[req.Status] = append(report.Examples[req.Status], domain.RequestExample{
				RequestID: req.ID,
				Category:  req.Category,
			})
		}
	}
	return report, nil
}

func (s *reportService) summarize(ctx context.Context, event *domain.Event) (*domain.EventSummary, error) {
	confirmed, err := s.registrations.CountByEventAndStatus(ctx, event.ID, domain.RegistrationConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed registrations: %w", err)
	}
	waitlisted, err := s.registrations.CountByEventAndStatus(ctx, event.ID, domain.RegistrationWaitlisted)
	if err != nil {
		return nil, fmt.Errorf("count waitlisted registrations: %w", err)
	}
	violations := make([]string, len(event.Violations))
	copy(violations, event.Violations)
	return &domain.EventSummary{
		EventID:    event.ID,
		Title:      event.Title,
		Date:       event.Date,
		StartTime:  event.StartTime,
		EndTime:    event.EndTime,
		Venue:      event.Venue,
		MaxSeats:   event.MaxSeats,
		Confirmed:  confirmed,
		Waitlisted: waitlisted,
		IsValid:    event.IsValid,
		Violations: violations,
	}, nil
}
