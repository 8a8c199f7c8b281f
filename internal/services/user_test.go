package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsessions/internal/domain"
)

func TestUserService_SyncPrincipal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	err := env.users.SyncPrincipal(ctx, domain.Principal{Name: "nobody"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	principal := domain.Principal{ID: "user-a", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin}
	require.NoError(t, env.users.SyncPrincipal(ctx, principal))

	principal.Name = "Alice B."
	require.NoError(t, env.users.SyncPrincipal(ctx, principal))

	u, err := env.store.Users().GetByID(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", u.Username)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	// Creator names come from the mirror.
	sport := env.createSport(t, "Tennis")
	sess := env.createSession(t, sport.ID, "user-a", 1, "Court 1")
	view, err := env.sessions.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", view.CreatorName)
}
