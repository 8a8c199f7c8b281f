package domain

import (
	"context"
	"time"
)

// Roles carried by the identity provider's tokens.
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// Principal is the authenticated caller as asserted by the identity provider.
// The services trust the IDs they receive and never authenticate on their own.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the principal may manage sports and publish sessions.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// User mirrors a principal locally so sessions can show creator names and creators can be notified.
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserFromPrincipal returns the User mirror for p.
func NewUserFromPrincipal(p Principal, now time.Time) *User {
	return &User{
		ID:        p.ID,
		Username:  p.Name,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TokenIssuer issues tokens for a principal. Only development tooling issues tokens;
// production tokens come from the identity provider.
type TokenIssuer interface {
	Issue(principal Principal, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the principal it asserts.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}

// UserRepository stores the identity mirror.
type UserRepository interface {
	Upsert(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
}

// UserService keeps the identity mirror in step with the principals seen on requests.
type UserService interface {
	SyncPrincipal(ctx context.Context, principal Principal) error
}
