package session

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists sessions.
type Repository interface {
	Create(ctx context.Context, sess *Session) error
	// FindByID returns (nil, nil) when no session matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)
	FindByUserID(ctx context.Context, userID string, skip, limit int) ([]*Session, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}
