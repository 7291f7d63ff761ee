// Package session implements the session repository on PostgreSQL.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "caresma-server/internal/domain/session"
	"caresma-server/internal/infrastructure/database/entities"
	"caresma-server/internal/utils/platformerrors"
)

// Repository persists sessions.
type Repository struct {
	db *gorm.DB
}

var _ domain.Repository = (*Repository)(nil)

// NewRepository builds a session repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the session record.
func (r *Repository) Create(ctx context.Context, sess *domain.Session) error {
	entity := entities.NewSchemaSession(sess)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create session",
			err,
		)
	}

	sess.ID = entity.ID
	sess.StartedAt = entity.StartedAt
	sess.CreatedAt = entity.CreatedAt
	sess.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID fetches a session by its ID, returning nil when absent.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var entity entities.Session
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch session",
			err,
		)
	}

	return entity.EtoD(), nil
}

// FindByUserID fetches a user's sessions, newest first.
func (r *Repository) FindByUserID(ctx context.Context, userID string, skip, limit int) ([]*domain.Session, error) {
	var rows []entities.Session
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch user sessions",
			err,
		)
	}

	result := make([]*domain.Session, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// CountByUserID returns the number of sessions owned by a user.
func (r *Repository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Session{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count user sessions",
			err,
		)
	}
	return count, nil
}

// Update saves a modified session record.
func (r *Repository) Update(ctx context.Context, sess *domain.Session) error {
	entity := entities.NewSchemaSession(sess)
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update session",
			err,
		)
	}
	sess.UpdatedAt = entity.UpdatedAt
	return nil
}

// Delete removes a session record together with its messages, and detaches
// any assessments that reference it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.Message{}, "thread_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Assessment{}).
			Where("session_id = ?", id).
			Update("session_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Session{}, "id = ?", id).Error
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete session",
			err,
		)
	}
	return nil
}
