package domain

import "context"

// SportPopularity is the number of sessions published under a sport.
// swagger:model SportPopularity
type SportPopularity struct {
	SportID      string `json:"sport_id"`
	SportName    string `json:"sport_name"`
	SessionCount int    `json:"session_count"`
}

// ReportService builds read-only administrative reports.
type ReportService interface {
	SportPopularity(ctx context.Context) ([]*SportPopularity, error)
}
