package domain

import (
	"context"
	"time"
)

// Registration statuses. Admission only ever assigns Confirmed or
// Waitlisted; duplicate attempts fail with ErrDuplicateRegistration and
// are never stored.
const (
	RegistrationConfirmed  = "Confirmed"
	RegistrationWaitlisted = "Waitlisted"
)

// Registration represents a student's registration for an event.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	EventID   string    `json:"event_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	// Seq is a monotonic insertion sequence assigned by the repository,
	// used for first-come-first-served ordering.
	Seq int64 `json:"-"`
}

// NewRegistration returns a new Registration with the given fields.
func NewRegistration(id, studentID, eventID, status string, createdAt time.Time) *Registration {
	return &Registration{
		ID:        id,
		StudentID: studentID,
		EventID:   eventID,
		Status:    status,
		CreatedAt: createdAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	// GetByStudentAndEvent returns ErrNotFound when the pair has no registration.
	GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*Registration, error)
	// ListByEventID returns registrations for an event in arrival order.
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	CountByEventAndStatus(ctx context.Context, eventID, status string) (int, error)
}

// RegistrationService defines registration admission operations.
type RegistrationService interface {
	// Register admits a student to an event: Confirmed while seats remain,
	// Waitlisted once the confirmed count reaches max_seats. Invalid events
	// still accept registrations. Returns ErrNotFound for unknown ids and
	// ErrDuplicateRegistration for a repeated (student, event) pair.
	Register(ctx context.Context, studentID, eventID string) (*Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Registration, error)
}
