package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"campusservice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestStudentRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO students`).
		WithArgs("S1", "Alice Johnson", "CSE", 3, "alice@campus.edu", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewStudentRepository(db)
	err = repo.Create(ctx, domain.NewStudent("S1", "Alice Johnson", "CSE", 3, "alice@campus.edu", createdAt))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"student_id", "name", "dept", "year", "contact", "created_at"}

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Student
		wantErr error
	}{
		{
			name: "success",
			id:   "S1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT student_id, name, dept, year, contact, created_at`).
					WithArgs("S1").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("S1", "Alice Johnson", "CSE", 3, "alice@campus.edu", createdAt))
			},
			want: &domain.Student{
				ID: "S1", Name: "Alice Johnson", Dept: "CSE", Year: 3,
				Contact: "alice@campus.edu", CreatedAt: createdAt,
			},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT student_id`).
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
			repo := NewStudentRepository(db)
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

func TestStudentRepository_List(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"student_id", "name", "dept", "year", "contact", "created_at"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT student_id, name, dept, year, contact, created_at`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("S1", "Alice Johnson", "CSE", 3, "alice@campus.edu", createdAt).
			AddRow("S2", "Bob Smith", "ECE", 2, "bob@campus.edu", createdAt))

	repo := NewStudentRepository(db)
	students, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "S1", students[0].ID)
	require.Equal(t, "Bob Smith", students[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
