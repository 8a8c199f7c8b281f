package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sportsessions/internal/domain"
)

// defaultNotifyTimeout bounds a join notification. It runs detached from the request deadline.
const defaultNotifyTimeout = 10 * time.Second

type membershipService struct {
	sessionRepo    domain.SessionRepository
	membershipRepo domain.MembershipRepository
	notifier       domain.JoinNotifier
	logger         *slog.Logger
	contextTimeout time.Duration
	notifyTimeout  time.Duration
	now            func() time.Time
}

// NewMembershipService creates a MembershipService. notifier may be nil, in which case creators
// are not told about joins.
func NewMembershipService(
	sessionRepo domain.SessionRepository,
	membershipRepo domain.MembershipRepository,
	notifier domain.JoinNotifier,
	logger *slog.Logger,
	timeout time.Duration,
) domain.MembershipService {
	return &membershipService{
		sessionRepo:    sessionRepo,
		membershipRepo: membershipRepo,
		notifier:       notifier,
		logger:         logger,
		contextTimeout: timeout,
		notifyTimeout:  defaultNotifyTimeout,
		now:            time.Now,
	}
}

// JoinSession enrolls the player with a single insert. The store's uniqueness rule decides
// between concurrent joins of the same pair, so exactly one succeeds.
// The creator is notified after the dashboard is resolved, outside the request deadline.
func (s *membershipService) JoinSession(ctx context.Context, sessionID, playerID string) (*domain.PlayerDashboard, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("session id", sessionID); err != nil {
		return nil, err
	}
	if err := requireField("player id", playerID); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.membershipRepo.Create(ctx, domain.NewMembership(sessionID, playerID, now)); err != nil {
		return nil, fmt.Errorf("join session %s: %w", sessionID, err)
	}
	s.logger.InfoContext(ctx, "player joined session", "session_id", sessionID, "player_id", playerID)

	dashboard, err := resolveDashboard(ctx, s.sessionRepo, playerID, now)
	s.notifyJoined(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (s *membershipService) LeaveSession(ctx context.Context, sessionID, playerID string) (*domain.PlayerDashboard, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("session id", sessionID); err != nil {
		return nil, err
	}
	if err := requireField("player id", playerID); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Delete(ctx, sessionID, playerID); err != nil {
		return nil, fmt.Errorf("leave session %s: %w", sessionID, err)
	}
	s.logger.InfoContext(ctx, "player left session", "session_id", sessionID, "player_id", playerID)

	return resolveDashboard(ctx, s.sessionRepo, playerID, s.now())
}

// notifyJoined runs after the membership is committed, on a context that survives the caller's
// deadline but carries its own. Failures are logged and never undo the join.
func (s *membershipService) notifyJoined(parent context.Context, sessionID, playerID string) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := withTimeout(context.WithoutCancel(parent), s.notifyTimeout)
	defer cancel()

	view, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "join notification skipped", "session_id", sessionID, "error", err)
		return
	}
	if err := s.notifier.NotifySessionJoined(ctx, view, playerID); err != nil {
		s.logger.WarnContext(ctx, "join notification failed", "session_id", sessionID, "player_id", playerID, "error", err)
	}
}
