package services

import (
	"context"
	"fmt"
	"time"

	"sportsessions/internal/domain"
)

type reportService struct {
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
}

// NewReportService creates a ReportService reading from the session repository.
func NewReportService(sessionRepo domain.SessionRepository, timeout time.Duration) domain.ReportService {
	return &reportService{sessionRepo: sessionRepo, contextTimeout: timeout}
}

// SportPopularity counts sessions per sport, busiest first. Sports without sessions are omitted.
func (s *reportService) SportPopularity(ctx context.Context) ([]*domain.SportPopularity, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	counts, err := s.sessionRepo.CountBySport(ctx)
	if err != nil {
		return nil, fmt.Errorf("sport popularity: %w", err)
	}
	return counts, nil
}
