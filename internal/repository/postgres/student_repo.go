package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusservice/internal/domain"
)

type studentRepository struct {
	DB *sql.DB
}

// NewStudentRepository returns a StudentRepository backed by PostgreSQL.
func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{DB: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (student_id, name, dept, year, contact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		student.ID, student.Name, student.Dept, student.Year, student.Contact, student.CreatedAt)
	return err
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `
		SELECT student_id, name, dept, year, contact, created_at
		FROM students
		WHERE student_id = $1
	`
	student := &domain.Student{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&student.ID, &student.Name, &student.Dept, &student.Year, &student.Contact, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	query := `
		SELECT student_id, name, dept, year, contact, created_at
		FROM students
		ORDER BY created_at, student_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		student := &domain.Student{}
		if err := rows.Scan(&student.ID, &student.Name, &student.Dept, &student.Year, &student.Contact, &student.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if students == nil {
		students = []*domain.Student{}
	}
	return students, nil
}
