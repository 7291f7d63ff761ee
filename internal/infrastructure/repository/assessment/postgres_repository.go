// Package assessment implements the assessment repository on PostgreSQL.
package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "caresma-server/internal/domain/assessment"
	"caresma-server/internal/infrastructure/database/entities"
	"caresma-server/internal/utils/platformerrors"
)

// Repository persists assessments.
type Repository struct {
	db *gorm.DB
}

var _ domain.Repository = (*Repository)(nil)

// NewRepository builds an assessment repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the assessment record.
func (r *Repository) Create(ctx context.Context, a *domain.Assessment) error {
	entity := entities.NewSchemaAssessment(a)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create assessment",
			err,
		)
	}

	a.ID = entity.ID
	a.CreatedAt = entity.CreatedAt
	a.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID fetches an assessment by its ID, returning nil when absent.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	var entity entities.Assessment
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch assessment",
			err,
		)
	}

	return entity.EtoD(), nil
}

// FindBySessionID fetches a session's assessments, newest first.
func (r *Repository) FindBySessionID(ctx context.Context, sessionID uuid.UUID, limit int) ([]*domain.Assessment, error) {
	var rows []entities.Assessment
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch session assessments",
			err,
		)
	}

	result := make([]*domain.Assessment, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// Delete removes an assessment record.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Assessment{}, "id = ?", id).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete assessment",
			err,
		)
	}
	return nil
}
