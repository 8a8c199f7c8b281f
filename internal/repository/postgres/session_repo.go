package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sportsessions/internal/domain"
)

// sessionViewSelect yields the columns scanned by scanSessionView.
// The creator may not have been mirrored yet, hence the outer join.
const sessionViewSelect = `
		SELECT s.id, s.sport_id, s.creator_id, s.date, s.venue, s.created_at, s.updated_at,
			sp.name, COALESCE(u.username, '')
		FROM sessions s
		INNER JOIN sports sp ON sp.id = s.sport_id
		LEFT JOIN users u ON u.id = s.creator_id
`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func scanSessionView(row rowScanner) (*domain.SessionView, error) {
	v := &domain.SessionView{}
	if err := row.Scan(
		&v.ID, &v.SportID, &v.CreatorID, &v.Date, &v.Venue, &v.CreatedAt, &v.UpdatedAt,
		&v.SportName, &v.CreatorName,
	); err != nil {
		return nil, err
	}
	v.Date = domain.DateOf(v.Date)
	return v, nil
}

func (r *sessionRepository) listViews(ctx context.Context, query string, args ...any) ([]*domain.SessionView, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	views := make([]*domain.SessionView, 0)
	for rows.Next() {
		v, err := scanSessionView(rows)
		if err != nil {
			return nil, unavailable(err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return views, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (sport_id, creator_id, date, venue, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.SportID, s.CreatorID, s.Date, s.Venue, s.CreatedAt, s.UpdatedAt).
		Scan(&s.ID)
	if err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: sport %s", domain.ErrNotFound, s.SportID)
		}
		return translate(err)
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.SessionView, error) {
	query := sessionViewSelect + `WHERE s.id = $1`
	v, err := scanSessionView(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return v, nil
}

// Update overwrites sport, date and venue in one conditional statement; ownership is part of
// the WHERE clause so no separate read can go stale.
func (r *sessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := `
		UPDATE sessions
		SET sport_id = $1, date = $2, venue = $3, updated_at = $4
		WHERE id = $5 AND creator_id = $6
		RETURNING created_at
	`
	err := r.DB.QueryRowContext(ctx, query, s.SportID, s.Date, s.Venue, s.UpdatedAt, s.ID, s.CreatorID).
		Scan(&s.CreatedAt)
	if err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: sport %s", domain.ErrNotFound, s.SportID)
		}
		return translate(err)
	}
	return nil
}

// Delete locks the owned session row, then removes its memberships and the session itself in
// one transaction. A join racing the delete either commits first and is removed here, or
// fails its foreign key once the row is gone.
func (r *sessionRepository) Delete(ctx context.Context, id, creatorID string) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		var lockedID string
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM sessions WHERE id = $1 AND creator_id = $2 FOR UPDATE`,
			id, creatorID,
		).Scan(&lockedID)
		if err != nil {
			return translate(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_players WHERE session_id = $1`, lockedID); err != nil {
			return unavailable(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, lockedID); err != nil {
			return unavailable(err)
		}
		return nil
	})
}

func (r *sessionRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.SessionView, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&total); err != nil {
		return nil, 0, unavailable(err)
	}
	query := sessionViewSelect + `
		ORDER BY s.date DESC, s.id
		LIMIT $1 OFFSET $2
	`
	views, err := r.listViews(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *sessionRepository) ListAvailableForPlayer(ctx context.Context, playerID string, today time.Time) ([]*domain.SessionView, error) {
	query := sessionViewSelect + `
		WHERE s.date >= $2
			AND s.creator_id <> $1
			AND NOT EXISTS (
				SELECT 1 FROM session_players p
				WHERE p.session_id = s.id AND p.player_id = $1
			)
		ORDER BY s.date, s.id
	`
	return r.listViews(ctx, query, playerID, domain.DateOf(today))
}

func (r *sessionRepository) ListJoinedByPlayer(ctx context.Context, playerID string) ([]*domain.SessionView, error) {
	query := sessionViewSelect + `
		INNER JOIN session_players p ON p.session_id = s.id
		WHERE p.player_id = $1
		ORDER BY s.date, s.id
	`
	return r.listViews(ctx, query, playerID)
}

func (r *sessionRepository) CountBySport(ctx context.Context) ([]*domain.SportPopularity, error) {
	query := `
		SELECT sp.id, sp.name, COUNT(s.id)
		FROM sessions s
		INNER JOIN sports sp ON sp.id = s.sport_id
		GROUP BY sp.id, sp.name
		ORDER BY COUNT(s.id) DESC, sp.name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	counts := make([]*domain.SportPopularity, 0)
	for rows.Next() {
		c := &domain.SportPopularity{}
		if err := rows.Scan(&c.SportID, &c.SportName, &c.SessionCount); err != nil {
			return nil, unavailable(err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return counts, nil
}
