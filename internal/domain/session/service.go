package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"caresma-server/internal/infrastructure/metrics"
	"caresma-server/internal/utils/platformerrors"
)

// DefaultListLimit bounds session listings.
const DefaultListLimit = 100

// Service defines session lifecycle operations. Every access is checked
// against the owning user.
type Service interface {
	CreateSession(ctx context.Context, userID string, params CreateParams) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID, userID string) (*Session, error)
	ListUserSessions(ctx context.Context, userID string, skip, limit int) ([]*Session, int64, error)
	UpdateSession(ctx context.Context, id uuid.UUID, userID string, params UpdateParams) (*Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID, userID string) error
	EndSession(ctx context.Context, id uuid.UUID, userID string) (*Session, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService creates a new session service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "session-service").Logger(),
	}
}

func (s *service) CreateSession(ctx context.Context, userID string, params CreateParams) (*Session, error) {
	sess := &Session{
		UserID:   userID,
		Title:    params.Title,
		Status:   StatusActive,
		Metadata: params.Metadata,
		Notes:    params.Notes,
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}

	metrics.RecordSessionCreated()
	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("user_id", userID).
		Msg("session created")

	return sess, nil
}

func (s *service) GetSession(ctx context.Context, id uuid.UUID, userID string) (*Session, error) {
	return s.ownedSession(ctx, id, userID)
}

func (s *service) ListUserSessions(ctx context.Context, userID string, skip, limit int) ([]*Session, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	sessions, err := s.repo.FindByUserID(ctx, userID, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

func (s *service) UpdateSession(ctx context.Context, id uuid.UUID, userID string, params UpdateParams) (*Session, error) {
	sess, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		sess.Title = params.Title
	}
	if params.Status != nil {
		if !ValidateStatus(string(*params.Status)) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation,
				fmt.Sprintf("invalid session status: %q", *params.Status),
				nil,
			)
		}
		sess.Status = *params.Status
	}
	if params.Metadata != nil {
		sess.Metadata = params.Metadata
	}
	if params.Notes != nil {
		sess.Notes = params.Notes
	}

	if err := s.repo.Update(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *service) DeleteSession(ctx context.Context, id uuid.UUID, userID string) error {
	if _, err := s.ownedSession(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("session_id", id.String()).Msg("session deleted")
	return nil
}

// EndSession marks the session completed and stamps EndedAt.
func (s *service) EndSession(ctx context.Context, id uuid.UUID, userID string) (*Session, error) {
	sess, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess.Status = StatusCompleted
	sess.EndedAt = &now

	if err := s.repo.Update(ctx, sess); err != nil {
		return nil, err
	}

	metrics.RecordSessionEnded()
	s.log.Info().Str("session_id", id.String()).Msg("session ended")
	return sess, nil
}

// ownedSession loads a session and enforces ownership.
func (s *service) ownedSession(ctx context.Context, id uuid.UUID, userID string) (*Session, error) {
	sess, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("session not found: %s", id),
			nil,
		)
	}

	if userID != "" && sess.UserID != userID {
		s.log.Warn().
			Str("session_id", id.String()).
			Str("user_id", userID).
			Str("owner_id", sess.UserID).
			Msg("session access denied")
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"not authorized to access this session",
			nil,
		)
	}

	return sess, nil
}
