package requests

// CreateSessionRequest represents a request to start an assessment session.
type CreateSessionRequest struct {
	Title    *string        `json:"title,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Notes    *string        `json:"notes,omitempty"`
}

// UpdateSessionRequest carries mutable session fields. Absent fields are
// left unchanged.
type UpdateSessionRequest struct {
	Title    *string        `json:"title,omitempty"`
	Status   *string        `json:"status,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Notes    *string        `json:"notes,omitempty"`
}

// ListSessionsQuery carries session listing parameters.
type ListSessionsQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
