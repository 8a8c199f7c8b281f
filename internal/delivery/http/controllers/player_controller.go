package controllers

import (
	"log/slog"
	"net/http"

	"sportsessions/internal/delivery/http/helpers"
	"sportsessions/internal/delivery/http/middleware"
	"sportsessions/internal/domain"
)

// DashboardSuccessResponse is the success response envelope for dashboard, join and leave (200).
type DashboardSuccessResponse struct {
	Data  *domain.PlayerDashboard `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// SessionViewsSuccessResponse is the success response envelope for a list of sessions (200).
type SessionViewsSuccessResponse struct {
	Data  []*domain.SessionView `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// PlayerController serves the caller's own view of sessions. The player is always the
// authenticated principal.
type PlayerController struct {
	Logger       *slog.Logger
	Availability domain.AvailabilityService
	Memberships  domain.MembershipService
}

func NewPlayerController(logger *slog.Logger, availability domain.AvailabilityService, memberships domain.MembershipService) *PlayerController {
	return &PlayerController{
		Logger:       logger,
		Availability: availability,
		Memberships:  memberships,
	}
}

// Dashboard godoc
// @Summary Player dashboard
// @Description Returns the sessions the caller can still join and the sessions already joined.
// @Tags player
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DashboardSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /player/dashboard [get]
func (c *PlayerController) Dashboard(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	dashboard, err := c.Availability.DashboardFor(r.Context(), principal.ID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dashboard)
}

// AvailableSessions godoc
// @Summary Sessions available to join
// @Description Sessions dated today or later that the caller neither created nor joined.
// @Tags player
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionViewsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /player/sessions/available [get]
func (c *PlayerController) AvailableSessions(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	views, err := c.Availability.AvailableSessionsFor(r.Context(), principal.ID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}

// JoinedSessions godoc
// @Summary Joined sessions
// @Description Every session the caller has joined, past ones included.
// @Tags player
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionViewsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /player/sessions/joined [get]
func (c *PlayerController) JoinedSessions(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	views, err := c.Availability.JoinedSessionsFor(r.Context(), principal.ID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}

// JoinSession godoc
// @Summary Join a session
// @Description Enrolls the caller in a session and returns the refreshed dashboard. Joining twice yields 409.
// @Tags player
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.DashboardSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already joined)"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /player/sessions/{sessionID}/join [post]
func (c *PlayerController) JoinSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	dashboard, err := c.Memberships.JoinSession(r.Context(), sessionID, principal.ID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dashboard)
}

// LeaveSession godoc
// @Summary Leave a session
// @Description Removes the caller from a session and returns the refreshed dashboard.
// @Tags player
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.DashboardSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (not joined)"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /player/sessions/{sessionID}/join [delete]
func (c *PlayerController) LeaveSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	dashboard, err := c.Memberships.LeaveSession(r.Context(), sessionID, principal.ID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dashboard)
}
