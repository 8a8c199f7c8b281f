package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"sportsessions/internal/domain"
)

type membershipRepository struct {
	DB *sql.DB
}

func NewMembershipRepository(db *sql.DB) domain.MembershipRepository {
	return &membershipRepository{
		DB: db,
	}
}

// Create inserts the membership in a single statement. The (session_id, player_id) primary key
// is the only duplicate check, so concurrent joins for one pair cannot both succeed.
func (r *membershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	query := `
		INSERT INTO session_players (session_id, player_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, m.SessionID, m.PlayerID, m.CreatedAt)
	if err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return fmt.Errorf("%w: player already joined session", domain.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: session %s", domain.ErrNotFound, m.SessionID)
		}
		return translate(err)
	}
	return nil
}

func (r *membershipRepository) Delete(ctx context.Context, sessionID, playerID string) error {
	query := `DELETE FROM session_players WHERE session_id = $1 AND player_id = $2`
	result, err := r.DB.ExecContext(ctx, query, sessionID, playerID)
	if err != nil {
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
