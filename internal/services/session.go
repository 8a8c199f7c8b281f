package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sportsessions/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewSessionService creates a SessionService backed by the given repository.
func NewSessionService(sessionRepo domain.SessionRepository, logger *slog.Logger, timeout time.Duration) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("creator id", input.CreatorID); err != nil {
		return nil, err
	}
	if err := requireField("sport id", input.SportID); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	now := s.now()
	session := domain.NewSession(input.SportID, input.CreatorID, input.Date, strings.TrimSpace(input.Venue), now, now)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.logger.InfoContext(ctx, "session created",
		"session_id", session.ID, "sport_id", session.SportID, "creator_id", session.CreatorID)
	return session, nil
}

// EditSession overwrites sport, date and venue in one conditional update scoped to the creator.
func (s *sessionService) EditSession(ctx context.Context, input domain.EditSessionInput) (*domain.Session, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("session id", input.SessionID); err != nil {
		return nil, err
	}
	if err := requireField("requester id", input.RequesterID); err != nil {
		return nil, err
	}
	if err := requireField("sport id", input.SportID); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	session := &domain.Session{
		ID:        input.SessionID,
		SportID:   input.SportID,
		CreatorID: input.RequesterID,
		Date:      domain.DateOf(input.Date),
		Venue:     strings.TrimSpace(input.Venue),
		UpdatedAt: s.now(),
	}
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("edit session %s: %w", input.SessionID, err)
	}
	return session, nil
}

// DeleteSession removes the session together with its memberships.
func (s *sessionService) DeleteSession(ctx context.Context, sessionID, requesterID string) error {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("session id", sessionID); err != nil {
		return err
	}
	if err := requireField("requester id", requesterID); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, sessionID, requesterID); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	s.logger.InfoContext(ctx, "session deleted", "session_id", sessionID, "creator_id", requesterID)
	return nil
}

func (s *sessionService) GetSession(ctx context.Context, id string) (*domain.SessionView, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("session id", id); err != nil {
		return nil, err
	}
	return s.sessionRepo.GetByID(ctx, id)
}

func (s *sessionService) ListSessions(ctx context.Context, params domain.PaginationParams) ([]*domain.SessionView, int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}
	views, total, err := s.sessionRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	return views, total, nil
}
