package memory

import (
	"context"
	"testing"

	"campusservice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	event := domain.NewEvent("E1", "Workshop", "Org", "2025-09-20", "10:00", "12:00", "Hall A", 50)
	require.NoError(t, repo.Create(ctx, event))
	assert.Equal(t, int64(1), event.Seq)

	got, err := repo.GetByID(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Workshop", got.Title)

	_, err = repo.GetByID(ctx, "E2")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	require.NoError(t, repo.Create(ctx, domain.NewEvent("E1", "A", "O", "2025-09-20", "10:00", "12:00", "V", 10)))
	err := repo.Create(ctx, domain.NewEvent("E1", "B", "O", "2025-09-21", "10:00", "12:00", "V", 10))
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestEventRepository_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	for _, id := range []string{"E3", "E1", "E2"} {
		require.NoError(t, repo.Create(ctx, domain.NewEvent(id, "T", "O", "2025-09-20", "10:00", "12:00", "V "+id, 10)))
	}

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "E3", events[0].ID)
	assert.Equal(t, "E1", events[1].ID)
	assert.Equal(t, "E2", events[2].ID)
	assert.Equal(t, int64(1), events[0].Seq)
	assert.Equal(t, int64(3), events[2].Seq)
}

func TestEventRepository_CopiesDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	event := domain.NewEvent("E1", "Workshop", "Org", "2025-09-20", "10:00", "12:00", "Hall A", 50)
	event.Violations = []string{"E0"}
	event.IsValid = false
	require.NoError(t, repo.Create(ctx, event))

	got, err := repo.GetByID(ctx, "E1")
	require.NoError(t, err)
	got.Title = "mutated"
	got.Violations[0] = "mutated"

	fresh, err := repo.GetByID(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Workshop", fresh.Title)
	assert.Equal(t, []string{"E0"}, fresh.Violations)
}
