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

type studentService struct {
	mu       *sync.RWMutex
	students domain.StudentRepository
}

// NewStudentService creates a StudentService sharing the store-wide gate.
func NewStudentService(mu *sync.RWMutex, students domain.StudentRepository) domain.StudentService {
	return &studentService{mu: mu, students: students}
}

func (s *studentService) AddStudent(ctx context.Context, student *domain.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.students.GetByID(ctx, student.ID); err == nil {
		return domain.ErrDuplicateID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get student: %w", err)
	}

	student.CreatedAt = time.Now()
	if err := s.students.Create(ctx, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if students == nil {
		students = []*domain.Student{}
	}
	return students, nil
}

func validateStudent(student *domain.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", domain.ErrInvalidInput)
	}
	student.ID = strings.TrimSpace(student.ID)
	student.Name = strings.TrimSpace(student.Name)
	if student.ID == "" {
		return fmt.Errorf("%w: student_id is required", domain.ErrInvalidInput)
	}
	if student.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if student.Year < 0 {
		return fmt.Errorf("%w: year must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
