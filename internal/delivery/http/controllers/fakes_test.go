package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"sportsessions/internal/delivery/http/helpers"
	"sportsessions/internal/delivery/http/middleware"
	"sportsessions/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var (
	testAdmin  = domain.Principal{ID: "user-a", Name: "Alice", Role: domain.RoleAdmin}
	testPlayer = domain.Principal{ID: "user-b", Name: "Bob", Role: domain.RolePlayer}
)

func withPrincipal(req *http.Request, p domain.Principal) *http.Request {
	return req.WithContext(middleware.SetPrincipal(req.Context(), p))
}

// decodeData decodes the envelope in rr and, on success, its data into dest.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) *helpers.APIError {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if envelope.Error == nil && dest != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
	return envelope.Error
}

type fakeSportService struct {
	sports     []*domain.Sport
	err        error
	lastName   string
	lastDelete string
}

func (f *fakeSportService) CreateSport(_ context.Context, name string) (*domain.Sport, error) {
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Sport{ID: "sport-1", Name: name}, nil
}

func (f *fakeSportService) GetSport(_ context.Context, id string) (*domain.Sport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Sport{ID: id}, nil
}

func (f *fakeSportService) ListSports(context.Context) ([]*domain.Sport, error) {
	return f.sports, f.err
}

func (f *fakeSportService) DeleteSport(_ context.Context, id string) error {
	f.lastDelete = id
	return f.err
}

type fakeSessionService struct {
	err        error
	view       *domain.SessionView
	views      []*domain.SessionView
	total      int
	lastCreate domain.CreateSessionInput
	lastEdit   domain.EditSessionInput
	lastDelete [2]string
	lastParams domain.PaginationParams
}

func (f *fakeSessionService) CreateSession(_ context.Context, in domain.CreateSessionInput) (*domain.Session, error) {
	f.lastCreate = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Session{ID: "session-1", SportID: in.SportID, CreatorID: in.CreatorID, Date: in.Date, Venue: in.Venue}, nil
}

func (f *fakeSessionService) EditSession(_ context.Context, in domain.EditSessionInput) (*domain.Session, error) {
	f.lastEdit = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Session{ID: in.SessionID, SportID: in.SportID, CreatorID: in.RequesterID, Date: in.Date, Venue: in.Venue}, nil
}

func (f *fakeSessionService) DeleteSession(_ context.Context, sessionID, requesterID string) error {
	f.lastDelete = [2]string{sessionID, requesterID}
	return f.err
}

func (f *fakeSessionService) GetSession(context.Context, string) (*domain.SessionView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeSessionService) ListSessions(_ context.Context, params domain.PaginationParams) ([]*domain.SessionView, int, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.views, f.total, nil
}

type fakeAvailabilityService struct {
	dashboard  *domain.PlayerDashboard
	err        error
	lastPlayer string
}

func (f *fakeAvailabilityService) AvailableSessionsFor(_ context.Context, playerID string) ([]*domain.SessionView, error) {
	f.lastPlayer = playerID
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard.Available, nil
}

func (f *fakeAvailabilityService) JoinedSessionsFor(_ context.Context, playerID string) ([]*domain.SessionView, error) {
	f.lastPlayer = playerID
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard.Joined, nil
}

func (f *fakeAvailabilityService) DashboardFor(_ context.Context, playerID string) (*domain.PlayerDashboard, error) {
	f.lastPlayer = playerID
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard, nil
}

type fakeMembershipService struct {
	dashboard *domain.PlayerDashboard
	err       error
	lastCall  string
}

func (f *fakeMembershipService) JoinSession(_ context.Context, sessionID, playerID string) (*domain.PlayerDashboard, error) {
	f.lastCall = "join " + sessionID + " " + playerID
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard, nil
}

func (f *fakeMembershipService) LeaveSession(_ context.Context, sessionID, playerID string) (*domain.PlayerDashboard, error) {
	f.lastCall = "leave " + sessionID + " " + playerID
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard, nil
}

type fakeReportService struct {
	counts []*domain.SportPopularity
	err    error
}

func (f *fakeReportService) SportPopularity(context.Context) ([]*domain.SportPopularity, error) {
	return f.counts, f.err
}
