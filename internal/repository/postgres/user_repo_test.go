package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"sportsessions/internal/domain"
)

func TestUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	user := &domain.User{ID: "user-a", Username: "alice", Email: "alice@example.com", Role: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "insert or update",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users .* ON CONFLICT \(id\) DO UPDATE`).
					WithArgs("user-a", "alice", "alice@example.com", domain.RoleAdmin, now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error is unavailable",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewUserRepository(db).Upsert(ctx, user)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role", "created_at", "updated_at"}).
			AddRow("user-a", "alice", "alice@example.com", "admin", now, now))
	mock.ExpectQuery(`FROM users`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	repo := NewUserRepository(db)
	u, err := repo.GetByID(ctx, "user-a")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)

	_, err = repo.GetByID(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
