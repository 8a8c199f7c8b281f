package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsessions/internal/domain"
	"sportsessions/internal/repository/memory"
)

type sentMail struct {
	to, subject, html, text string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, html, text string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, html, text})
	return nil
}

type fakeRenderer struct {
	lastName string
	lastData any
	err      error
}

func (r *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	r.lastName, r.lastData = name, data
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_NotifySessionJoined(t *testing.T) {
	ctx := context.Background()
	view := &domain.SessionView{
		Session: domain.Session{
			ID:        "session-1",
			CreatorID: "user-a",
			Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			Venue:     "Court 1",
		},
		SportName: "Tennis",
	}

	tests := []struct {
		name      string
		users     []domain.Principal
		mailerErr error
		renderErr error
		wantSent  int
		wantErr   bool
		wantData  *domain.SessionJoinedEmailData
	}{
		{
			name: "sends to creator",
			users: []domain.Principal{
				{ID: "user-a", Name: "Alice", Email: "alice@example.com"},
				{ID: "user-b", Name: "Bob"},
			},
			wantSent: 1,
			wantData: &domain.SessionJoinedEmailData{
				Email: "alice@example.com", CreatorName: "Alice", PlayerName: "Bob",
				SportName: "Tennis", Date: "2025-06-11", Venue: "Court 1",
			},
		},
		{
			name:     "unknown player falls back to id",
			users:    []domain.Principal{{ID: "user-a", Name: "Alice", Email: "alice@example.com"}},
			wantSent: 1,
			wantData: &domain.SessionJoinedEmailData{
				Email: "alice@example.com", CreatorName: "Alice", PlayerName: "user-b",
				SportName: "Tennis", Date: "2025-06-11", Venue: "Court 1",
			},
		},
		{
			name:     "unknown creator is skipped",
			wantSent: 0,
		},
		{
			name:     "creator without email is skipped",
			users:    []domain.Principal{{ID: "user-a", Name: "Alice"}},
			wantSent: 0,
		},
		{
			name:      "mailer failure is returned",
			users:     []domain.Principal{{ID: "user-a", Name: "Alice", Email: "alice@example.com"}},
			mailerErr: errors.New("throttled"),
			wantErr:   true,
		},
		{
			name:      "render failure is returned",
			users:     []domain.Principal{{ID: "user-a", Name: "Alice", Email: "alice@example.com"}},
			renderErr: errors.New("bad template"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := memory.NewStore()
			for _, p := range tt.users {
				require.NoError(t, st.Users().Upsert(ctx, domain.NewUserFromPrincipal(p, testNow)))
			}
			mailer := &fakeMailer{err: tt.mailerErr}
			renderer := &fakeRenderer{err: tt.renderErr}
			svc := NewEmailService(st.Users(), mailer, renderer, discardLogger())

			err := svc.NotifySessionJoined(ctx, view, "user-b")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, mailer.sent, tt.wantSent)
			if tt.wantData != nil {
				assert.Equal(t, "session_joined", renderer.lastName)
				assert.Equal(t, tt.wantData, renderer.lastData)
				assert.Equal(t, tt.wantData.Email, mailer.sent[0].to)
			}
		})
	}
}
