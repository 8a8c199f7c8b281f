package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sportsessions/internal/domain"
)

type sportService struct {
	sportRepo      domain.SportRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewSportService creates a SportService backed by the given repository.
func NewSportService(sportRepo domain.SportRepository, logger *slog.Logger, timeout time.Duration) domain.SportService {
	return &sportService{
		sportRepo:      sportRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *sportService) CreateSport(ctx context.Context, name string) (*domain.Sport, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if err := requireField("sport name", name); err != nil {
		return nil, err
	}
	sport := domain.NewSport(name, s.now())
	if err := s.sportRepo.Create(ctx, sport); err != nil {
		return nil, fmt.Errorf("create sport: %w", err)
	}
	s.logger.InfoContext(ctx, "sport created", "sport_id", sport.ID, "name", sport.Name)
	return sport, nil
}

func (s *sportService) GetSport(ctx context.Context, id string) (*domain.Sport, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("sport id", id); err != nil {
		return nil, err
	}
	return s.sportRepo.GetByID(ctx, id)
}

func (s *sportService) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	sports, err := s.sportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return sports, nil
}

// DeleteSport removes a sport. The repository refuses while any session references it, so a
// session created concurrently either blocks the delete or fails on the missing sport.
func (s *sportService) DeleteSport(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("sport id", id); err != nil {
		return err
	}
	if err := s.sportRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sport %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "sport deleted", "sport_id", id)
	return nil
}
