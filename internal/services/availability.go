package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"sportsessions/internal/domain"
)

type availabilityService struct {
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewAvailabilityService creates an AvailabilityService. Availability is evaluated against the
// store on every call; nothing is cached.
func NewAvailabilityService(sessionRepo domain.SessionRepository, timeout time.Duration) domain.AvailabilityService {
	return &availabilityService{
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *availabilityService) AvailableSessionsFor(ctx context.Context, playerID string) ([]*domain.SessionView, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("player id", playerID); err != nil {
		return nil, err
	}
	views, err := s.sessionRepo.ListAvailableForPlayer(ctx, playerID, domain.DateOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list available sessions: %w", err)
	}
	return views, nil
}

func (s *availabilityService) JoinedSessionsFor(ctx context.Context, playerID string) ([]*domain.SessionView, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("player id", playerID); err != nil {
		return nil, err
	}
	views, err := s.sessionRepo.ListJoinedByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list joined sessions: %w", err)
	}
	return views, nil
}

func (s *availabilityService) DashboardFor(ctx context.Context, playerID string) (*domain.PlayerDashboard, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("player id", playerID); err != nil {
		return nil, err
	}
	return resolveDashboard(ctx, s.sessionRepo, playerID, s.now())
}

// resolveDashboard reads both halves of a player's dashboard concurrently.
func resolveDashboard(ctx context.Context, sessionRepo domain.SessionRepository, playerID string, now time.Time) (*domain.PlayerDashboard, error) {
	var dashboard domain.PlayerDashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		views, err := sessionRepo.ListAvailableForPlayer(gctx, playerID, domain.DateOf(now))
		if err != nil {
			return fmt.Errorf("list available sessions: %w", err)
		}
		dashboard.Available = views
		return nil
	})
	g.Go(func() error {
		views, err := sessionRepo.ListJoinedByPlayer(gctx, playerID)
		if err != nil {
			return fmt.Errorf("list joined sessions: %w", err)
		}
		dashboard.Joined = views
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
