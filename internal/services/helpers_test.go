package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sportsessions/internal/domain"
	"sportsessions/internal/repository/memory"
)

var testNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// testEnv wires every service to one memory store with a fixed clock.
type testEnv struct {
	store        *memory.Store
	sports       *sportService
	sessions     *sessionService
	availability *availabilityService
	memberships  *membershipService
	reports      *reportService
	users        *userService
}

func newTestEnv(t *testing.T, notifier domain.JoinNotifier) *testEnv {
	t.Helper()
	st := memory.NewStore()
	logger := discardLogger()
	return &testEnv{
		store:        st,
		sports:       &sportService{sportRepo: st.Sports(), logger: logger, now: fixedClock},
		sessions:     &sessionService{sessionRepo: st.Sessions(), logger: logger, now: fixedClock},
		availability: &availabilityService{sessionRepo: st.Sessions(), now: fixedClock},
		memberships: &membershipService{
			sessionRepo:    st.Sessions(),
			membershipRepo: st.Memberships(),
			notifier:       notifier,
			logger:         logger,
			now:            fixedClock,
		},
		reports: &reportService{sessionRepo: st.Sessions()},
		users:   &userService{userRepo: st.Users(), now: fixedClock},
	}
}

func (e *testEnv) createSport(t *testing.T, name string) *domain.Sport {
	t.Helper()
	sport, err := e.sports.CreateSport(context.Background(), name)
	require.NoError(t, err)
	return sport
}

func (e *testEnv) createSession(t *testing.T, sportID, creatorID string, daysFromNow int, venue string) *domain.Session {
	t.Helper()
	sess, err := e.sessions.CreateSession(context.Background(), domain.CreateSessionInput{
		SportID:   sportID,
		CreatorID: creatorID,
		Date:      testNow.AddDate(0, 0, daysFromNow),
		Venue:     venue,
	})
	require.NoError(t, err)
	return sess
}

func ids(views []*domain.SessionView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

// recordingNotifier records join notifications and returns err from each call.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (n *recordingNotifier) NotifySessionJoined(_ context.Context, session *domain.SessionView, playerID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, session.ID+"/"+playerID)
	return n.err
}

// stubSessionRepo overrides selected SessionRepository methods on top of a real one.
type stubSessionRepo struct {
	domain.SessionRepository
	joinedErr error
	listErr   error
	gotParams domain.PaginationParams
}

func (s *stubSessionRepo) ListJoinedByPlayer(ctx context.Context, playerID string) ([]*domain.SessionView, error) {
	if s.joinedErr != nil {
		return nil, s.joinedErr
	}
	return s.SessionRepository.ListJoinedByPlayer(ctx, playerID)
}

func (s *stubSessionRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.SessionView, int, error) {
	s.gotParams = params
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	return s.SessionRepository.List(ctx, params)
}

// deadlineSessionRepo fails reads once ctx is done, like a network store would.
type deadlineSessionRepo struct {
	domain.SessionRepository
}

func (r deadlineSessionRepo) GetByID(ctx context.Context, id string) (*domain.SessionView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return r.SessionRepository.GetByID(ctx, id)
}

func (r deadlineSessionRepo) ListAvailableForPlayer(ctx context.Context, playerID string, today time.Time) ([]*domain.SessionView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return r.SessionRepository.ListAvailableForPlayer(ctx, playerID, today)
}

func (r deadlineSessionRepo) ListJoinedByPlayer(ctx context.Context, playerID string) ([]*domain.SessionView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return r.SessionRepository.ListJoinedByPlayer(ctx, playerID)
}

// stallingNotifier blocks until its context is done, like a mailer that never answers.
type stallingNotifier struct {
	mu       sync.Mutex
	calls    int
	deadline time.Time
	endErr   error
}

func (n *stallingNotifier) NotifySessionJoined(ctx context.Context, _ *domain.SessionView, _ string) error {
	deadline, _ := ctx.Deadline()
	<-ctx.Done()
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.deadline = deadline
	n.endErr = ctx.Err()
	return n.endErr
}
