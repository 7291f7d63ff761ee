package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "caresma-server/internal/domain/session"
)

// Session represents the database schema for assessment sessions.
type Session struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID    string            `gorm:"type:varchar(64);index:idx_session_user_created;not null"`
	Title     *string           `gorm:"type:varchar(256)"`
	Status    domain.Status     `gorm:"type:varchar(20);not null;default:'active'"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	Notes     *string           `gorm:"type:text"`
	StartedAt time.Time         `gorm:"not null"`
	EndedAt   *time.Time        `gorm:"type:timestamptz"`
	CreatedAt time.Time         `gorm:"index:idx_session_user_created"`
	UpdatedAt time.Time
}

// Messages and assessments reference sessions by ID without a schema-level
// foreign key: message writes must not depend on the session table, and
// assessments may be taken against ad-hoc transcripts. Cleanup on session
// delete is handled by the repository.

// BeforeCreate assigns the generated identifier and start time.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now().UTC()
	}
	return nil
}

// NewSchemaSession creates a database schema from a domain session.
func NewSchemaSession(s *domain.Session) *Session {
	return &Session{
		ID:        s.ID,
		UserID:    s.UserID,
		Title:     s.Title,
		Status:    s.Status,
		Metadata:  datatypes.JSONMap(s.Metadata),
		Notes:     s.Notes,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// EtoD converts the database schema to a domain session.
func (s *Session) EtoD() *domain.Session {
	return &domain.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		Title:     s.Title,
		Status:    s.Status,
		Metadata:  map[string]any(s.Metadata),
		Notes:     s.Notes,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
