package shared

import (
	"net/http"
	"strconv"
)

type Pagination struct {
	PageNumber int
	PageSize   int
	SearchTerm string
}

// ParsePagination reads pageNumber/pageSize/searchTerm from the query.
// Absent or unparsable values fall back to the defaults; range clamping is
// the service's responsibility so the policy lives in one place.
func ParsePagination(r *http.Request, defaultSize int) Pagination {
	p := Pagination{PageNumber: 1, PageSize: defaultSize, SearchTerm: r.URL.Query().Get("searchTerm")}
	if raw := r.URL.Query().Get("pageNumber"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.PageNumber = v
		}
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.PageSize = v
		}
	}
	return p
}
