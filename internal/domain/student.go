package domain

import (
	"context"
	"time"
)

// Student represents a student known to the campus system. The ID is
// supplied by the caller (e.g. "S01"), not generated.
// swagger:model Student
type Student struct {
	ID        string    `json:"student_id"`
	Name      string    `json:"name"`
	Dept      string    `json:"dept"`
	Year      int       `json:"year"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStudent returns a new Student with the given fields.
func NewStudent(id, name, dept string, year int, contact string, createdAt time.Time) *Student {
	return &Student{
		ID:        id,
		Name:      name,
		Dept:      dept,
		Year:      year,
		Contact:   contact,
		CreatedAt: createdAt,
	}
}

// StudentRepository defines storage operations for students.
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
}

// StudentService defines student-facing operations.
type StudentService interface {
	// AddStudent stores a new student. Returns ErrDuplicateID if the id is taken.
	AddStudent(ctx context.Context, student *Student) error
	ListStudents(ctx context.Context) ([]*Student, error)
}
