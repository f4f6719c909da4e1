package memory

import (
	"context"
	"sync"

	"campusservice/internal/domain"
)

type eventRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Event
	order []string
	seq   int64
}

// NewEventRepository returns an empty in-memory EventRepository.
func NewEventRepository() domain.EventRepository {
	return &eventRepository{byID: make(map[string]*domain.Event)}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[event.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.seq++
	event.Seq = r.seq
	stored := cloneEvent(event)
	r.byID[event.ID] = stored
	r.order = append(r.order, event.ID)
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneEvent(stored), nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		events = append(events, cloneEvent(r.byID[id]))
	}
	return events, nil
}

func cloneEvent(event *domain.Event) *domain.Event {
	clone := *event
	clone.Violations = make([]string, len(event.Violations))
	copy(clone.Violations, event.Violations)
	return &clone
}
