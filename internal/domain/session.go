package domain

import (
	"context"
	"time"
)

// DateLayout is the wire format of a session date.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date, expressed as midnight UTC.
// Session dates carry no time of day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Session is a single scheduled occurrence of a sport at a venue on a date, owned by its creator.
// swagger:model Session
type Session struct {
	ID        string    `json:"id"`
	SportID   string    `json:"sport_id"`
	CreatorID string    `json:"creator_id"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns a new Session with the given fields. ID is set by the repository on create.
func NewSession(sportID, creatorID string, date time.Time, venue string, createdAt, updatedAt time.Time) *Session {
	return &Session{
		SportID:   sportID,
		CreatorID: creatorID,
		Date:      DateOf(date),
		Venue:     venue,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SessionView is a session enriched with its sport name and the creator's display name.
// swagger:model SessionView
type SessionView struct {
	Session
	SportName   string `json:"sport_name"`
	CreatorName string `json:"creator_name"`
}

// SessionRepository defines storage for sessions.
//
// Update and Delete are conditional on the creator: a row that does not exist and a row owned
// by someone else both yield ErrNotFound. Delete removes the session's memberships in the same
// transaction.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*SessionView, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id, creatorID string) error
	List(ctx context.Context, params PaginationParams) ([]*SessionView, int, error)
	// ListAvailableForPlayer returns sessions dated on or after today that the player neither
	// created nor joined.
	ListAvailableForPlayer(ctx context.Context, playerID string, today time.Time) ([]*SessionView, error)
	ListJoinedByPlayer(ctx context.Context, playerID string) ([]*SessionView, error)
	CountBySport(ctx context.Context) ([]*SportPopularity, error)
}

// CreateSessionInput holds the fields accepted when publishing a session.
type CreateSessionInput struct {
	SportID   string
	CreatorID string
	Date      time.Time
	Venue     string
}

// EditSessionInput holds the fields a creator may change on a session.
type EditSessionInput struct {
	SessionID   string
	RequesterID string
	SportID     string
	Date        time.Time
	Venue       string
}

// SessionService manages the session lifecycle.
type SessionService interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*Session, error)
	// EditSession overwrites sport, date and venue. Returns ErrNotFound when the session is
	// missing or not owned by the requester.
	EditSession(ctx context.Context, input EditSessionInput) (*Session, error)
	// DeleteSession removes the session and its memberships. Returns ErrNotFound when the
	// session is missing or not owned by the requester.
	DeleteSession(ctx context.Context, sessionID, requesterID string) error
	GetSession(ctx context.Context, id string) (*SessionView, error)
	ListSessions(ctx context.Context, params PaginationParams) ([]*SessionView, int, error)
}
