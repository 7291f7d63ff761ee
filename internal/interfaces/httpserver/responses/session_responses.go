package responses

import (
	"time"

	"caresma-server/internal/domain/session"
)

// SessionPayload is the wire form of an assessment session.
type SessionPayload struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     *string        `json:"title,omitempty"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SessionFromDomain maps the domain session to DTO.
func SessionFromDomain(s *session.Session) SessionPayload {
	return SessionPayload{
		ID:        s.ID.String(),
		UserID:    s.UserID,
		Title:     s.Title,
		Status:    string(s.Status),
		Metadata:  s.Metadata,
		Notes:     s.Notes,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SessionsFromDomain maps a session slice to DTOs.
func SessionsFromDomain(sessions []*session.Session) []SessionPayload {
	data := make([]SessionPayload, 0, len(sessions))
	for _, s := range sessions {
		data = append(data, SessionFromDomain(s))
	}
	return data
}
