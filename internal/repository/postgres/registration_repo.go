package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusservice/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a RegistrationRepository backed by
// PostgreSQL. A UNIQUE(student_id, event_id) constraint backs the
// duplicate check; seq is a BIGSERIAL preserving arrival order.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (id, student_id, event_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq
	`
	return r.DB.QueryRowContext(ctx, query,
		reg.ID, reg.StudentID, reg.EventID, reg.Status, reg.CreatedAt).
		Scan(&reg.Seq)
}

func (r *registrationRepository) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, status, created_at, seq
		FROM registrations
		WHERE student_id = $1 AND event_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, studentID, eventID).
		Scan(&reg.ID, &reg.StudentID, &reg.EventID, &reg.Status, &reg.CreatedAt, &reg.Seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, status, created_at, seq
		FROM registrations
		WHERE event_id = $1
		ORDER BY seq
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.StudentID, &reg.EventID, &reg.Status, &reg.CreatedAt, &reg.Seq); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}

func (r *registrationRepository) CountByEventAndStatus(ctx context.Context, eventID, status string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM registrations
		WHERE event_id = $1 AND status = $2
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, eventID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
