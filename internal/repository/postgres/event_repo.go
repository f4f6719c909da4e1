package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"campusservice/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by PostgreSQL.
// Violations are stored as a text[] column; seq is a BIGSERIAL that
// preserves insertion order.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (event_id, title, organizer, date, start_time, end_time, venue, max_seats, is_valid, violations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq
	`
	return r.DB.QueryRowContext(ctx, query,
		event.ID, event.Title, event.Organizer, event.Date, event.StartTime, event.EndTime,
		event.Venue, event.MaxSeats, event.IsValid, pq.Array(event.Violations), event.CreatedAt).
		Scan(&event.Seq)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT event_id, title, organizer, date, start_time, end_time, venue, max_seats, is_valid, violations, created_at, seq
		FROM events
		WHERE event_id = $1
	`
	event := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&event.ID, &event.Title, &event.Organizer, &event.Date, &event.StartTime, &event.EndTime,
			&event.Venue, &event.MaxSeats, &event.IsValid, pq.Array(&event.Violations), &event.CreatedAt, &event.Seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if event.Violations == nil {
		event.Violations = []string{}
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT event_id, title, organizer, date, start_time, end_time, venue, max_seats, is_valid, violations, created_at, seq
		FROM events
		ORDER BY seq
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event := &domain.Event{}
		if err := rows.Scan(&event.ID, &event.Title, &event.Organizer, &event.Date, &event.StartTime, &event.EndTime,
			&event.Venue, &event.MaxSeats, &event.IsValid, pq.Array(&event.Violations), &event.CreatedAt, &event.Seq); err != nil {
			return nil, err
		}
		if event.Violations == nil {
			event.Violations = []string{}
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
