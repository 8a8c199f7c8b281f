package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"sportsessions/internal/delivery/http/helpers"
	"sportsessions/internal/domain"
)

// CreateSportRequest is the request body for POST /sports.
type CreateSportRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateSportRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// SportSuccessResponse is the success response envelope for a single sport.
type SportSuccessResponse struct {
	Data  *domain.Sport     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSportsSuccessResponse is the success response envelope for GET /sports (200).
type ListSportsSuccessResponse struct {
	Data  []*domain.Sport   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SportController struct {
	Logger  *slog.Logger
	Service domain.SportService
}

func NewSportController(logger *slog.Logger, svc domain.SportService) *SportController {
	return &SportController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSports godoc
// @Summary List sports
// @Description Returns every sport ordered by name.
// @Tags sports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSportsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sports [get]
func (c *SportController) ListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := c.Service.ListSports(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sports)
}

// CreateSport godoc
// @Summary Create a sport
// @Description Adds a sport to the catalog. Names need not be unique. Admin only.
// @Tags sports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sport body CreateSportRequest true "Sport name"
// @Success 201 {object} controllers.SportSuccessResponse "data contains the created sport"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sports [post]
func (c *SportController) CreateSport(w http.ResponseWriter, r *http.Request) {
	var req CreateSportRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sport, err := c.Service.CreateSport(r.Context(), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sport)
}

// DeleteSport godoc
// @Summary Delete a sport
// @Description Deletes a sport. Refused with 409 while any session references it. Admin only.
// @Tags sports
// @Produce json
// @Security BearerAuth
// @Param sportID path string true "Sport ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (sport in use)"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /sports/{sportID} [delete]
func (c *SportController) DeleteSport(w http.ResponseWriter, r *http.Request) {
	sportID := r.PathValue("sportID")
	if sportID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sportID")
		return
	}
	if err := c.Service.DeleteSport(r.Context(), sportID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
