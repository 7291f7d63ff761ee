package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message represents the database schema for conversation messages. Content
// is stored encrypted; the repository layer owns the conversion to and from
// plaintext, so no domain mapper lives here.
type Message struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ThreadID          uuid.UUID `gorm:"type:uuid;index:idx_message_thread_created,priority:1;not null"`
	Role              string    `gorm:"type:varchar(20);not null"`
	Content           string    `gorm:"type:text;not null"`
	EncryptionVersion string    `gorm:"type:varchar(10);not null;default:'v1'"`
	CreatedAt         time.Time `gorm:"index:idx_message_thread_created,priority:2"`
}

// BeforeCreate assigns the generated identifier.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
