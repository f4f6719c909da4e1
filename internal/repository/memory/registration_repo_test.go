package memory

import (
	"context"
	"testing"
	"time"

	"campusservice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reg(id, studentID, eventID, status string) *domain.Registration {
	return domain.NewRegistration(id, studentID, eventID, status, time.Now())
}

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationRepository()

	r := reg("reg-1", "S1", "E1", domain.RegistrationConfirmed)
	require.NoError(t, repo.Create(ctx, r))
	assert.Equal(t, int64(1), r.Seq)

	got, err := repo.GetByStudentAndEvent(ctx, "S1", "E1")
	require.NoError(t, err)
	assert.Equal(t, "reg-1", got.ID)

	_, err = repo.GetByStudentAndEvent(ctx, "S1", "E2")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrationRepository_DuplicatePair(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationRepository()

	require.NoError(t, repo.Create(ctx, reg("reg-1", "S1", "E1", domain.RegistrationConfirmed)))
	err := repo.Create(ctx, reg("reg-2", "S1", "E1", domain.RegistrationWaitlisted))
	require.ErrorIs(t, err, domain.ErrDuplicateRegistration)

	// Same student at a different event is fine.
	require.NoError(t, repo.Create(ctx, reg("reg-3", "S1", "E2", domain.RegistrationConfirmed)))
}

func TestRegistrationRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationRepository()

	require.NoError(t, repo.Create(ctx, reg("reg-1", "S2", "E1", domain.RegistrationConfirmed)))
	require.NoError(t, repo.Create(ctx, reg("reg-2", "S1", "E2", domain.RegistrationConfirmed)))
	require.NoError(t, repo.Create(ctx, reg("reg-3", "S1", "E1", domain.RegistrationWaitlisted)))

	regs, err := repo.ListByEventID(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "S2", regs[0].StudentID)
	assert.Equal(t, "S1", regs[1].StudentID)

	empty, err := repo.ListByEventID(ctx, "E9")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRegistrationRepository_CountByEventAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationRepository()

	require.NoError(t, repo.Create(ctx, reg("reg-1", "S1", "E1", domain.RegistrationConfirmed)))
	require.NoError(t, repo.Create(ctx, reg("reg-2", "S2", "E1", domain.RegistrationConfirmed)))
	require.NoError(t, repo.Create(ctx, reg("reg-3", "S3", "E1", domain.RegistrationWaitlisted)))
	require.NoError(t, repo.Create(ctx, reg("reg-4", "S1", "E2", domain.RegistrationConfirmed)))

	confirmed, err := repo.CountByEventAndStatus(ctx, "E1", domain.RegistrationConfirmed)
	require.NoError(t, err)
	assert.Equal(t, 2, confirmed)

	waitlisted, err := repo.CountByEventAndStatus(ctx, "E1", domain.RegistrationWaitlisted)
	require.NoError(t, err)
	assert.Equal(t, 1, waitlisted)
}
