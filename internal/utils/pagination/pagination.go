// Package pagination provides the shared paginated list envelope.
package pagination

// Page is the generic paginated response returned by list endpoints.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// New builds a Page from an item slice and the total row count.
func New[T any](items []T, total int64, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
