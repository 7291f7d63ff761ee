package assessment

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists assessments.
type Repository interface {
	Create(ctx context.Context, a *Assessment) error
	// FindByID returns (nil, nil) when no assessment matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	// FindBySessionID returns at most limit assessments, newest first.
	FindBySessionID(ctx context.Context, sessionID uuid.UUID, limit int) ([]*Assessment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Analyzer produces a cognitive analysis from a conversation transcript.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*Analysis, error)
}
