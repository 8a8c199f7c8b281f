package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sportsessions/internal/domain"
)

type emailService struct {
	userRepo domain.UserRepository
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns a JoinNotifier that addresses creators through the user mirror and
// sends with the given Mailer and template renderer.
func NewEmailService(userRepo domain.UserRepository, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.JoinNotifier {
	return &emailService{userRepo: userRepo, mailer: mailer, renderer: renderer, logger: logger}
}

// NotifySessionJoined sends the "session_joined" template to the session's creator.
// Creators with no known email are skipped.
func (s *emailService) NotifySessionJoined(ctx context.Context, session *domain.SessionView, playerID string) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	creator, err := s.userRepo.GetByID(ctx, session.CreatorID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && creator.Email == "") {
		s.logger.DebugContext(ctx, "creator has no email, skipping join notification", "creator_id", session.CreatorID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get creator: %w", err)
	}

	playerName := playerID
	if player, err := s.userRepo.GetByID(ctx, playerID); err == nil && player.Username != "" {
		playerName = player.Username
	}

	data := &domain.SessionJoinedEmailData{
		Email:       creator.Email,
		CreatorName: creator.Username,
		PlayerName:  playerName,
		SportName:   session.SportName,
		Date:        session.Date.Format(domain.DateLayout),
		Venue:       session.Venue,
	}
	subject, htmlBody, textBody, err := s.renderer.Render("session_joined", data)
	if err != nil {
		return fmt.Errorf("failed to render session_joined template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send session joined email: %w", err)
	}
	s.logger.InfoContext(ctx, "join notification sent", "session_id", session.ID, "to", data.Email)
	return nil
}
