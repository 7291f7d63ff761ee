package session

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an assessment session.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidateStatus reports whether input is a known session status.
func ValidateStatus(input string) bool {
	switch Status(input) {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Session groups the ordered messages of one conversation. Its ID is the
// thread_id messages and assessments reference.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	UserID    string         `json:"user_id"`
	Title     *string        `json:"title,omitempty"`
	Status    Status         `json:"status"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateParams carries caller-supplied fields for a new session.
type CreateParams struct {
	Title    *string
	Metadata map[string]any
	Notes    *string
}

// UpdateParams carries the mutable session fields. Nil means unchanged.
type UpdateParams struct {
	Title    *string
	Status   *Status
	Metadata map[string]any
	Notes    *string
}
