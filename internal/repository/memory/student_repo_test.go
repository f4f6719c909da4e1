package memory

import (
	"context"
	"testing"
	"time"

	"campusservice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	student := domain.NewStudent("S1", "Alice Johnson", "CSE", 3, "alice@campus.edu", time.Now())
	require.NoError(t, repo.Create(ctx, student))

	got, err := repo.GetByID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", got.Name)
	assert.Equal(t, "CSE", got.Dept)

	_, err = repo.GetByID(ctx, "S2")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStudentRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	require.NoError(t, repo.Create(ctx, domain.NewStudent("S1", "Alice", "CSE", 3, "", time.Now())))
	err := repo.Create(ctx, domain.NewStudent("S1", "Other Alice", "ECE", 1, "", time.Now()))
	require.ErrorIs(t, err, domain.ErrDuplicateID)

	// The original record survives the rejected create.
	got, err := repo.GetByID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestStudentRepository_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	for _, id := range []string{"S3", "S1", "S2"} {
		require.NoError(t, repo.Create(ctx, domain.NewStudent(id, "Student "+id, "CSE", 2, "", time.Now())))
	}

	students, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "S3", students[0].ID)
	assert.Equal(t, "S1", students[1].ID)
	assert.Equal(t, "S2", students[2].ID)
}

func TestStudentRepository_CopiesDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	require.NoError(t, repo.Create(ctx, domain.NewStudent("S1", "Alice", "CSE", 3, "", time.Now())))

	got, err := repo.GetByID(ctx, "S1")
	require.NoError(t, err)
	got.Name = "mutated"

	fresh, err := repo.GetByID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", fresh.Name)
}
