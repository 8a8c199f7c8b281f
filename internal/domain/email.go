package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SessionJoinedEmailData holds data for the email sent to a creator when a player joins.
type SessionJoinedEmailData struct {
	Email       string
	CreatorName string
	PlayerName  string
	SportName   string
	Date        string
	Venue       string
}

// JoinNotifier tells a session's creator that a player joined.
// Implementations are best effort; callers log failures and carry on.
type JoinNotifier interface {
	NotifySessionJoined(ctx context.Context, session *SessionView, playerID string) error
}
