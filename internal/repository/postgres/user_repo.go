package postgres

import (
	"context"
	"database/sql"

	"sportsessions/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

// Upsert writes only when the mirrored fields changed, so repeated requests by the same
// principal do not rewrite the row.
func (r *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username, email = EXCLUDED.email, role = EXCLUDED.role, updated_at = EXCLUDED.updated_at
		WHERE users.username IS DISTINCT FROM EXCLUDED.username
			OR users.email IS DISTINCT FROM EXCLUDED.email
			OR users.role IS DISTINCT FROM EXCLUDED.role
	`
	if _, err := r.DB.ExecContext(ctx, query, u.ID, u.Username, u.Email, u.Role, u.CreatedAt, u.UpdatedAt); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, email, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}
