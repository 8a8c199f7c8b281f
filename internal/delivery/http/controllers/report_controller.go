package controllers

import (
	"log/slog"
	"net/http"

	"sportsessions/internal/delivery/http/helpers"
	"sportsessions/internal/domain"
)

// SportPopularitySuccessResponse is the success response envelope for GET /reports/sport-popularity (200).
type SportPopularitySuccessResponse struct {
	Data  []*domain.SportPopularity `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{Logger: logger, Service: svc}
}

// SportPopularity godoc
// @Summary Sport popularity report
// @Description Number of sessions per sport, busiest first. Admin only.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SportPopularitySuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /reports/sport-popularity [get]
func (c *ReportController) SportPopularity(w http.ResponseWriter, r *http.Request) {
	counts, err := c.Service.SportPopularity(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, counts)
}
