package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"sportsessions/internal/domain"
)

type sportRepository struct {
	DB *sql.DB
}

func NewSportRepository(db *sql.DB) domain.SportRepository {
	return &sportRepository{
		DB: db,
	}
}

func (r *sportRepository) Create(ctx context.Context, sport *domain.Sport) error {
	query := `
		INSERT INTO sports (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, sport.Name, sport.CreatedAt).Scan(&sport.ID); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *sportRepository) GetByID(ctx context.Context, id string) (*domain.Sport, error) {
	query := `
		SELECT id, name, created_at
		FROM sports
		WHERE id = $1
	`
	sport := &domain.Sport{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&sport.ID, &sport.Name, &sport.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return sport, nil
}

func (r *sportRepository) List(ctx context.Context) ([]*domain.Sport, error) {
	query := `
		SELECT id, name, created_at
		FROM sports
		ORDER BY name, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		sport := &domain.Sport{}
		if err := rows.Scan(&sport.ID, &sport.Name, &sport.CreatedAt); err != nil {
			return nil, unavailable(err)
		}
		sports = append(sports, sport)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return sports, nil
}

// Delete relies on the sessions.sport_id foreign key (ON DELETE RESTRICT): a referenced sport
// cannot be removed, and a session insert racing the delete holds a key-share lock on the row.
func (r *sportRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sports WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: sport is referenced by sessions", domain.ErrConflict)
		}
		return translate(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return unavailable(err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
