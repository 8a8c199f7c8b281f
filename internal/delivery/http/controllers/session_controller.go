package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"sportsessions/internal/delivery/http/helpers"
	"sportsessions/internal/delivery/http/middleware"
	"sportsessions/internal/domain"
)

// SessionRequest is the request body for POST /sessions and PUT /sessions/{sessionID}.
// Date is a calendar date in YYYY-MM-DD form.
type SessionRequest struct {
	SportID string `json:"sport_id"`
	Date    string `json:"date"`
	Venue   string `json:"venue"`
}

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	var errs []string
	if s.SportID == "" {
		errs = append(errs, "sport_id is required")
	}
	if s.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(domain.DateLayout, s.Date); err != nil {
		errs = append(errs, "date must be formatted as YYYY-MM-DD")
	}
	return errs
}

// date returns the parsed date. Only valid after Validate passed.
func (s SessionRequest) date() time.Time {
	d, _ := time.Parse(domain.DateLayout, s.Date)
	return d
}

// SessionSuccessResponse is the success response envelope for a created or edited session.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionViewSuccessResponse is the success response envelope for GET /sessions/{sessionID} (200).
type SessionViewSuccessResponse struct {
	Data  *domain.SessionView `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListSessionsResponse is the data payload for GET /sessions.
type ListSessionsResponse struct {
	Items      []*domain.SessionView  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListSessionsSuccessResponse is the success response envelope for GET /sessions (200).
type ListSessionsSuccessResponse struct {
	Data  ListSessionsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSessions godoc
// @Summary List all sessions
// @Description Paginated list of every session, newest date first. Admin only.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListSessionsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sessions [get]
func (c *SessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	views, total, err := c.Service.ListSessions(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListSessionsResponse{Items: views, Pagination: meta})
}

// CreateSession godoc
// @Summary Publish a session
// @Description Publishes a session of a sport at a venue on a date. The caller becomes its creator. Past dates are accepted. Admin only.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body SessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (sport)"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	session, err := c.Service.CreateSession(r.Context(), domain.CreateSessionInput{
		SportID:   req.SportID,
		CreatorID: principal.ID,
		Date:      req.date(),
		Venue:     req.Venue,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// GetSession godoc
// @Summary Get a session
// @Description Returns a session with its sport and creator names.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.SessionViewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sessions/{sessionID} [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	view, err := c.Service.GetSession(r.Context(), sessionID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// EditSession godoc
// @Summary Edit a session
// @Description Overwrites sport, date and venue. Only the creator can edit; other callers get 404.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Param session body SessionRequest true "New session data"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the edited session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sessions/{sessionID} [put]
func (c *SessionController) EditSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	session, err := c.Service.EditSession(r.Context(), domain.EditSessionInput{
		SessionID:   sessionID,
		RequesterID: principal.ID,
		SportID:     req.SportID,
		Date:        req.date(),
		Venue:       req.Venue,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Deletes a session and every membership in it. Only the creator can delete; other callers get 404.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sessions/{sessionID} [delete]
func (c *SessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
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
	if err := c.Service.DeleteSession(r.Context(), sessionID, principal.ID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
