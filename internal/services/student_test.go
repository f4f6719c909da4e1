package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"campusservice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusservice/internal/repository/memory"
)

func newTestStudentService() domain.StudentService {
	var mu sync.RWMutex
	return NewStudentService(&mu, memory.NewStudentRepository())
}

func TestStudentService_AddStudent(t *testing.T) {
	ctx := context.Background()
	svc := newTestStudentService()

	student := domain.NewStudent("S1", "Alice Johnson", "CS", 3, "alice@campus.edu", time.Time{})
	require.NoError(t, svc.AddStudent(ctx, student))
	assert.False(t, student.CreatedAt.IsZero())

	students, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "S1", students[0].ID)
}

func TestStudentService_AddStudent_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestStudentService()

	require.NoError(t, svc.AddStudent(ctx, domain.NewStudent("S1", "Alice", "CS", 3, "", time.Time{})))
	err := svc.AddStudent(ctx, domain.NewStudent("S1", "Other Alice", "EE", 1, "", time.Time{}))
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestStudentService_AddStudent_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestStudentService()

	tests := []struct {
		name    string
		student *domain.Student
	}{
		{"nil student", nil},
		{"missing id", domain.NewStudent(" ", "Alice", "CS", 3, "", time.Time{})},
		{"missing name", domain.NewStudent("S1", "", "CS", 3, "", time.Time{})},
		{"negative year", domain.NewStudent("S1", "Alice", "CS", -1, "", time.Time{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddStudent(ctx, tt.student)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestStudentService_ListStudents_Empty(t *testing.T) {
	svc := newTestStudentService()
	students, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}
