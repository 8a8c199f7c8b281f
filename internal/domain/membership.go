package domain

import (
	"context"
	"time"
)

// Membership records a player's enrollment in a session. At most one exists per (session, player).
// swagger:model Membership
type Membership struct {
	SessionID string    `json:"session_id"`
	PlayerID  string    `json:"player_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMembership returns a new Membership for the given session and player.
func NewMembership(sessionID, playerID string, createdAt time.Time) *Membership {
	return &Membership{
		SessionID: sessionID,
		PlayerID:  playerID,
		CreatedAt: createdAt,
	}
}

// PlayerDashboard bundles the sessions a player may still join with the ones already joined.
// swagger:model PlayerDashboard
type PlayerDashboard struct {
	Available []*SessionView `json:"available"`
	Joined    []*SessionView `json:"joined"`
}

// MembershipRepository defines storage for memberships.
// Create must be a single atomic insert: a duplicate pair yields ErrConflict and a missing
// session yields ErrNotFound.
type MembershipRepository interface {
	Create(ctx context.Context, m *Membership) error
	Delete(ctx context.Context, sessionID, playerID string) error
}

// AvailabilityService resolves which sessions a player can see.
type AvailabilityService interface {
	AvailableSessionsFor(ctx context.Context, playerID string) ([]*SessionView, error)
	JoinedSessionsFor(ctx context.Context, playerID string) ([]*SessionView, error)
	DashboardFor(ctx context.Context, playerID string) (*PlayerDashboard, error)
}

// MembershipService enacts join and leave.
// Both return the player's refreshed dashboard on success.
type MembershipService interface {
	JoinSession(ctx context.Context, sessionID, playerID string) (*PlayerDashboard, error)
	LeaveSession(ctx context.Context, sessionID, playerID string) (*PlayerDashboard, error)
}
