// Package message implements the message repository on PostgreSQL with
// transparent content encryption.
package message

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "caresma-server/internal/domain/message"
	"caresma-server/internal/infrastructure/database/entities"
	"caresma-server/internal/infrastructure/encryption"
	"caresma-server/internal/utils/platformerrors"
)

// decryptionPlaceholder stands in for content that can no longer be read,
// so one bad row does not fail a whole thread read.
const decryptionPlaceholder = "[decryption failed]"

// Repository persists messages with content encrypted at rest.
type Repository struct {
	db     *gorm.DB
	cipher *encryption.Cipher
	log    zerolog.Logger
}

var _ domain.Repository = (*Repository)(nil)

// NewRepository builds a message repository.
func NewRepository(db *gorm.DB, cipher *encryption.Cipher, log zerolog.Logger) *Repository {
	return &Repository{
		db:     db,
		cipher: cipher,
		log:    log.With().Str("component", "message-repository").Logger(),
	}
}

// Create inserts the message row. The insert is a single autocommitted
// statement, so the write is durable when this returns.
func (r *Repository) Create(ctx context.Context, msg *domain.Message) error {
	ciphertext, version, err := r.cipher.Encrypt(msg.Content)
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeInternal,
			"failed to encrypt message content",
			err,
		)
	}

	entity := &entities.Message{
		ThreadID:          msg.ThreadID,
		Role:              string(msg.Role),
		Content:           ciphertext,
		EncryptionVersion: version,
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create message",
			err,
		)
	}

	msg.ID = entity.ID
	msg.CreatedAt = entity.CreatedAt
	return nil
}

// FindByThreadID fetches the earliest limit messages of a thread in
// ascending creation order.
func (r *Repository) FindByThreadID(ctx context.Context, threadID uuid.UUID, limit int) ([]*domain.Message, error) {
	var rows []entities.Message
	if err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch thread messages",
			err,
		)
	}

	result := make([]*domain.Message, len(rows))
	for i := range rows {
		result[i] = r.etoD(&rows[i])
	}
	return result, nil
}

// CountByThreadID aggregates per-role counts server-side.
func (r *Repository) CountByThreadID(ctx context.Context, threadID uuid.UUID) (domain.Count, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Message{}).
		Select("role, count(*) as count").
		Where("thread_id = ?", threadID).
		Group("role").
		Find(&rows).Error; err != nil {
		return domain.Count{}, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count thread messages",
			err,
		)
	}

	var count domain.Count
	for _, row := range rows {
		switch domain.Role(row.Role) {
		case domain.RoleUser:
			count.UserMessages = row.Count
		case domain.RoleAssistant:
			count.AssistantMessages = row.Count
		}
		count.Total += row.Count
	}
	return count, nil
}

// etoD converts a database row to a domain message, decrypting content.
func (r *Repository) etoD(entity *entities.Message) *domain.Message {
	content, err := r.cipher.Decrypt(entity.Content, entity.EncryptionVersion)
	if err != nil {
		r.log.Error().
			Err(err).
			Str("message_id", entity.ID.String()).
			Str("encryption_version", entity.EncryptionVersion).
			Msg("failed to decrypt message content")
		content = decryptionPlaceholder
	}

	return &domain.Message{
		ID:        entity.ID,
		ThreadID:  entity.ThreadID,
		Role:      domain.Role(entity.Role),
		Content:   content,
		CreatedAt: entity.CreatedAt,
	}
}
