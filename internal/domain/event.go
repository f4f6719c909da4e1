package domain

import (
	"context"
	"time"
)

// Wire formats for event dates and times. Times are minute-granular and
// compare correctly as zero-padded strings, but services parse them anyway
// so malformed input is rejected up front.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event represents a campus event scheduled at a venue for a time window
// on a single day. IsValid and Violations are managed by the event service
// at creation time: an event that overlaps earlier events at the same
// venue and date is stored invalid, carrying the earlier event ids in
// Violations. An event's own validity is never revisited afterwards.
// swagger:model Event
type Event struct {
	ID         string    `json:"event_id"`
	Title      string    `json:"title"`
	Organizer  string    `json:"organizer"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Venue      string    `json:"venue"`
	MaxSeats   int       `json:"max_seats"`
	IsValid    bool      `json:"is_valid"`
	Violations []string  `json:"violations"`
	CreatedAt  time.Time `json:"created_at"`
	// Seq is a monotonic insertion sequence assigned by the repository.
	// It makes "earlier event wins" deterministic regardless of the
	// backend's iteration order.
	Seq int64 `json:"-"`
}

// NewEvent returns a new Event with the given fields. Seq is set by the
// repository on create; IsValid and Violations by the event service.
func NewEvent(id, title, organizer, date, startTime, endTime, venue string, maxSeats int) *Event {
	return &Event{
		ID:         id,
		Title:      title,
		Organizer:  organizer,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Venue:      venue,
		MaxSeats:   maxSeats,
		IsValid:    true,
		Violations: []string{},
	}
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns all events in insertion order (ascending Seq).
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines event management operations.
type EventService interface {
	// AddEvent validates and stores a new event, evaluating venue/date/time
	// conflicts against all previously stored events. Overlapping new events
	// are stored invalid rather than rejected. Returns ErrDuplicateID if the
	// event id is taken and ErrInvalidInput on malformed fields.
	AddEvent(ctx context.Context, event *Event) (*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
}
