package message

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists messages.
type Repository interface {
	// Create inserts the message and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, msg *Message) error
	// FindByThreadID returns at most limit messages of a thread, ascending
	// by creation time.
	FindByThreadID(ctx context.Context, threadID uuid.UUID, limit int) ([]*Message, error)
	// CountByThreadID aggregates per-role counts for a thread.
	CountByThreadID(ctx context.Context, threadID uuid.UUID) (Count, error)
}
