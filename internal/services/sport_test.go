package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsessions/internal/domain"
)

func TestSportService_CreateSport(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  error
	}{
		{name: "success", input: "Tennis", wantName: "Tennis"},
		{name: "name is trimmed", input: "  Padel \n", wantName: "Padel"},
		{name: "empty name", input: "   ", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			sport, err := env.sports.CreateSport(ctx, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, sport.ID)
			assert.Equal(t, tt.wantName, sport.Name)
			assert.Equal(t, testNow, sport.CreatedAt)
		})
	}
}

func TestSportService_DuplicateNamesAllowed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	first := env.createSport(t, "Tennis")
	second := env.createSport(t, "Tennis")
	assert.NotEqual(t, first.ID, second.ID)

	sports, err := env.sports.ListSports(ctx)
	require.NoError(t, err)
	assert.Len(t, sports, 2)
}

func TestSportService_DeleteSport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	used := env.createSport(t, "Tennis")
	unused := env.createSport(t, "Chess")
	env.createSession(t, used.ID, "user-a", 1, "Court 1")

	require.ErrorIs(t, env.sports.DeleteSport(ctx, used.ID), domain.ErrConflict)
	_, err := env.sports.GetSport(ctx, used.ID)
	require.NoError(t, err, "rejected delete leaves the sport intact")

	require.NoError(t, env.sports.DeleteSport(ctx, unused.ID))
	_, err = env.sports.GetSport(ctx, unused.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, env.sports.DeleteSport(ctx, unused.ID), domain.ErrNotFound)
	require.ErrorIs(t, env.sports.DeleteSport(ctx, ""), domain.ErrInvalidInput)
}
