package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"caresma-server/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the caresma domain.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Session{},
		&entities.Message{},
		&entities.Assessment{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
