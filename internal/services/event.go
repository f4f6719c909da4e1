package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"campusservice/internal/domain"
)

type eventService struct {
	mu     *sync.RWMutex
	events domain.EventRepository
}

// NewEventService creates an EventService. The mutex is the store-wide
// gate shared by every service that mutates or reads the entity store; it
// makes each operation appear atomic to callers.
func NewEventService(mu *sync.RWMutex, events domain.EventRepository) domain.EventService {
	return &eventService{mu: mu, events: events}
}

func (s *eventService) AddEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.events.GetByID(ctx, event.ID); err == nil {
		return nil, domain.ErrDuplicateID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get event: %w", err)
	}

	existing, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	// Evaluate the new event against every earlier event, whatever its
	// validity state. Earlier events are never retroactively invalidated;
	// only the newcomer is marked invalid.
	event.Violations = []string{}
	for _, other := range existing {
		if overlaps(event, other) {
			event.Violations = append(event.Violations, other.ID)
		}
	}
	event.IsValid = len(event.Violations) == 0
	event.CreatedAt = time.Now()

	// Invalid events are stored too: they stay visible in listings and
	// feed the conflict report.
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// overlaps reports whether two events collide: same venue, same date, and
// intersecting [start, end) windows.
func overlaps(a, b *domain.Event) bool {
	if a.Venue != b.Venue || a.Date != b.Date {
		return false
	}
	aStart, aEnd := mustClock(a.StartTime), mustClock(a.EndTime)
	bStart, bEnd := mustClock(b.StartTime), mustClock(b.EndTime)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// mustClock parses an HH:MM string already vetted by validateEvent.
func mustClock(s string) time.Time {
	t, _ := time.Parse(domain.TimeLayout, s)
	return t
}

func validateEvent(event *domain.Event) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", domain.ErrInvalidInput)
	}
	event.ID = strings.TrimSpace(event.ID)
	event.Title = strings.TrimSpace(event.Title)
	event.Venue = strings.TrimSpace(event.Venue)
	if event.ID == "" {
		return fmt.Errorf("%w: event_id is required", domain.ErrInvalidInput)
	}
	if event.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if event.Venue == "" {
		return fmt.Errorf("%w: venue is required", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateLayout, event.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	start, err := time.Parse(domain.TimeLayout, event.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start_time must be HH:MM", domain.ErrInvalidInput)
	}
	end, err := time.Parse(domain.TimeLayout, event.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end_time must be HH:MM", domain.ErrInvalidInput)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end_time must be after start_time", domain.ErrInvalidInput)
	}
	if event.MaxSeats <= 0 {
		return fmt.Errorf("%w: max_seats must be positive", domain.ErrInvalidInput)
	}
	return nil
}
