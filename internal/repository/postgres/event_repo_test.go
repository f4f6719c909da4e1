package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"campusservice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantSeq int64
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				ID: "E101", Title: "AI Workshop", Organizer: "CS Club",
				Date: "2025-09-20", StartTime: "10:00", EndTime: "12:00",
				Venue: "Seminar Hall", MaxSeats: 50, IsValid: true,
				Violations: []string{}, CreatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("E101", "AI Workshop", "CS Club", "2025-09-20", "10:00", "12:00",
						"Seminar Hall", 50, true, pq.Array([]string{}), createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(1)))
			},
			wantSeq: 1,
		},
		{
			name: "invalid event with violations",
			event: &domain.Event{
				ID: "E102", Title: "Robotics Demo", Organizer: "Robotics Soc",
				Date: "2025-09-20", StartTime: "11:00", EndTime: "12:30",
				Venue: "Seminar Hall", MaxSeats: 30, IsValid: false,
				Violations: []string{"E101"}, CreatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("E102", "Robotics Demo", "Robotics Soc", "2025-09-20", "11:00", "12:30",
						"Seminar Hall", 30, false, pq.Array([]string{"E101"}), createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(2)))
			},
			wantSeq: 2,
		},
		{
			name: "db error",
			event: &domain.Event{
				ID: "E103", Title: "Talk", Organizer: "Dept",
				Date: "2025-09-21", StartTime: "09:00", EndTime: "10:00",
				Venue: "Room 12", MaxSeats: 20, IsValid: true,
				Violations: []string{}, CreatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantSeq, tt.event.Seq)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"event_id", "title", "organizer", "date", "start_time", "end_time", "venue", "max_seats", "is_valid", "violations", "created_at", "seq"}

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   "E102",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT event_id, title, organizer, date, start_time, end_time, venue, max_seats, is_valid, violations, created_at, seq`).
					WithArgs("E102").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("E102", "Robotics Demo", "Robotics Soc", "2025-09-20", "11:00", "12:30",
							"Seminar Hall", 30, false, "{E101}", createdAt, int64(2)))
			},
			want: &domain.Event{
				ID: "E102", Title: "Robotics Demo", Organizer: "Robotics Soc",
				Date: "2025-09-20", StartTime: "11:00", EndTime: "12:30",
				Venue: "Seminar Hall", MaxSeats: 30, IsValid: false,
				Violations: []string{"E101"}, CreatedAt: createdAt, Seq: 2,
			},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT event_id, title, organizer`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"event_id", "title", "organizer", "date", "start_time", "end_time", "venue", "max_seats", "is_valid", "violations", "created_at", "seq"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT event_id, title, organizer, date, start_time, end_time, venue, max_seats, is_valid, violations, created_at, seq`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("E101", "AI Workshop", "CS Club", "2025-09-20", "10:00", "12:00", "Seminar Hall", 50, true, "{}", createdAt, int64(1)).
			AddRow("E102", "Robotics Demo", "Robotics Soc", "2025-09-20", "11:00", "12:30", "Seminar Hall", 30, false, "{E101}", createdAt, int64(2)))

	repo := NewEventRepository(db)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "E101", events[0].ID)
	require.Equal(t, []string{}, events[0].Violations)
	require.Equal(t, "E102", events[1].ID)
	require.Equal(t, []string{"E101"}, events[1].Violations)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List_Empty(t *testing.T) {
	ctx := context.Background()
	columns := []string{"event_id", "title", "organizer", "date", "start_time", "end_time", "venue", "max_seats", "is_valid", "violations", "created_at", "seq"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT event_id`).
		WillReturnRows(sqlmock.NewRows(columns))

	repo := NewEventRepository(db)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}
