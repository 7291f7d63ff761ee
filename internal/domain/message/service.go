package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"caresma-server/internal/infrastructure/metrics"
	"caresma-server/internal/utils/platformerrors"
)

// Service defines transcript persistence operations scoped by thread.
type Service interface {
	CreateMessage(ctx context.Context, threadID uuid.UUID, role Role, content string) (*Message, error)
	GetThreadMessages(ctx context.Context, threadID uuid.UUID, limit int) ([]*Message, error)
	GetMessageCount(ctx context.Context, threadID uuid.UUID) (Count, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService creates a new message service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "message-service").Logger(),
	}
}

// CreateMessage validates the role, then inserts a single row. The insert is
// its own transaction; nothing touches storage when validation fails.
func (s *service) CreateMessage(ctx context.Context, threadID uuid.UUID, role Role, content string) (*Message, error) {
	if !ValidateRole(string(role)) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("invalid role: %q, must be %q or %q", role, RoleUser, RoleAssistant),
			nil,
		)
	}

	msg := &Message{
		ThreadID: threadID,
		Role:     role,
		Content:  content,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	metrics.RecordMessageCreated(string(role))
	s.log.Info().
		Str("thread_id", threadID.String()).
		Str("message_id", msg.ID.String()).
		Str("role", string(role)).
		Int("content_length", len(content)).
		Msg("message created")

	return msg, nil
}

// GetThreadMessages returns the earliest limit messages of a thread in
// creation order. A limit of zero or less falls back to DefaultListLimit.
// An unknown thread yields an empty slice.
func (s *service) GetThreadMessages(ctx context.Context, threadID uuid.UUID, limit int) ([]*Message, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	msgs, err := s.repo.FindByThreadID(ctx, threadID, limit)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("thread_id", threadID.String()).
		Int("count", len(msgs)).
		Msg("thread messages retrieved")

	return msgs, nil
}

// GetMessageCount returns per-role totals for a thread. An unknown thread
// yields all-zero counts.
func (s *service) GetMessageCount(ctx context.Context, threadID uuid.UUID) (Count, error) {
	return s.repo.CountByThreadID(ctx, threadID)
}
