// Package memory provides in-process repository implementations backed by
// maps plus insertion-order slices. Each repository assigns monotonic
// sequence numbers on create so listing order is deterministic and does
// not depend on map iteration. Entities are copied on the way in and out
// so callers never alias stored state.
package memory

import (
	"context"
	"sync"

	"campusservice/internal/domain"
)

type studentRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Student
	order []string
}

// NewStudentRepository returns an empty in-memory StudentRepository.
func NewStudentRepository() domain.StudentRepository {
	return &studentRepository{byID: make(map[string]*domain.Student)}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[student.ID]; ok {
		return domain.ErrDuplicateID
	}
	stored := *student
	r.byID[student.ID] = &stored
	r.order = append(r.order, student.ID)
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	student := *stored
	return &student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]*domain.Student, 0, len(r.order))
	for _, id := range r.order {
		student := *r.byID[id]
		students = append(students, &student)
	}
	return students, nil
}
