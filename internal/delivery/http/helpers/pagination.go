package helpers

import (
	"net/http"
	"strconv"

	"sportsessions/internal/domain"
)

// Query defaults and limits for paginated listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps offsets far from integer overflow; no listing here gets near it.
	MaxPage = 1_000_000
)

// ParsePagination reads ?page= and ?page_size= for the session listing. Missing, malformed or
// non-positive values take the defaults; values above the limits are lowered to them.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveQueryInt(q.Get("page"), DefaultPage, MaxPage),
		PageSize: positiveQueryInt(q.Get("page_size"), DefaultPageSize, MaxPageSize),
	}
}

func positiveQueryInt(raw string, fallback, limit int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return min(v, limit)
}

// PaginationMeta accompanies a page of results.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta describes the page served out of total items. TotalPages is 0 when pageSize is.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}
