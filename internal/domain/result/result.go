// Package result holds the tagged success/failure envelope every service
// returns, so the API layer branches uniformly instead of unwinding errors.
package result

// Result is the response envelope: {success, data, message, errors}. Data is
// null on failure; Errors is always an array.
type Result[T any] struct {
	Success bool     `json:"success"`
	Data    *T       `json:"data"`
	Message *string  `json:"message"`
	Errors  []string `json:"errors"`
}

func Ok[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: &data, Message: optional(message), Errors: []string{}}
}

func Fail[T any](message string, errs ...string) Result[T] {
	if errs == nil {
		errs = []string{}
	}
	return Result[T]{Success: false, Message: optional(message), Errors: errs}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// PaginatedList is a page of items plus the totals computed before slicing.
type PaginatedList[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

func NewPaginatedList[T any](items []T, pageNumber, pageSize, totalCount int) PaginatedList[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PaginatedList[T]{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
