package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusservice/internal/domain"
)

type serviceRequestRepository struct {
	DB *sql.DB
}

// NewServiceRequestRepository returns a ServiceRequestRepository backed by
// PostgreSQL.
func NewServiceRequestRepository(db *sql.DB) domain.ServiceRequestRepository {
	return &serviceRequestRepository{DB: db}
}

func (r *serviceRequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (request_id, student_id, category, location, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		req.ID, req.StudentID, req.Category, req.Location, req.Description, req.Status, req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := `
		SELECT request_id, student_id, category, location, description, status, created_at, updated_at
		FROM service_requests
		WHERE request_id = $1
	`
	req := &domain.ServiceRequest{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&req.ID, &req.StudentID, &req.Category, &req.Location, &req.Description, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *serviceRequestRepository) Update(ctx context.Context, req *domain.ServiceRequest) error {
	query := `
		UPDATE service_requests
		SET status = $2, updated_at = $3
		WHERE request_id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, req.ID, req.Status, req.UpdatedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *serviceRequestRepository) List(ctx context.Context) ([]*domain.ServiceRequest, error) {
	query := `
		SELECT request_id, student_id, category, location, description, status, created_at, updated_at
		FROM service_requests
		ORDER BY created_at, request_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.ServiceRequest
	for rows.Next() {
		req := &domain.ServiceRequest{}
		if err := rows.Scan(&req.ID, &req.StudentID, &req.Category, &req.Location, &req.Description, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*domain.ServiceRequest{}
	}
	return requests, nil
}
