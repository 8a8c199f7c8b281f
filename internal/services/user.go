package services

import (
	"context"
	"fmt"
	"time"

	"sportsessions/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewUserService creates a UserService that mirrors principals into the given repository.
func NewUserService(userRepo domain.UserRepository, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *userService) SyncPrincipal(ctx context.Context, principal domain.Principal) error {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireField("principal id", principal.ID); err != nil {
		return err
	}
	if err := s.userRepo.Upsert(ctx, domain.NewUserFromPrincipal(principal, s.now())); err != nil {
		return fmt.Errorf("sync principal %s: %w", principal.ID, err)
	}
	return nil
}
