//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"caresma-server/internal/config"
	"caresma-server/internal/domain/assessment"
	"caresma-server/internal/domain/message"
	"caresma-server/internal/domain/session"
	"caresma-server/internal/infrastructure/auth"
	"caresma-server/internal/infrastructure/avatar"
	"caresma-server/internal/infrastructure/database"
	"caresma-server/internal/infrastructure/encryption"
	"caresma-server/internal/infrastructure/logger"
	"caresma-server/internal/infrastructure/openai"
	assessmentrepo "caresma-server/internal/infrastructure/repository/assessment"
	messagerepo "caresma-server/internal/infrastructure/repository/message"
	sessionrepo "caresma-server/internal/infrastructure/repository/session"
	"caresma-server/internal/interfaces/httpserver"
	"caresma-server/internal/interfaces/httpserver/handlers"
)

var domainSet = wire.NewSet(
	messagerepo.NewRepository,
	wire.Bind(new(message.Repository), new(*messagerepo.Repository)),
	sessionrepo.NewRepository,
	wire.Bind(new(session.Repository), new(*sessionrepo.Repository)),
	assessmentrepo.NewRepository,
	wire.Bind(new(assessment.Repository), new(*assessmentrepo.Repository)),
	openai.NewAnalyzer,
	wire.Bind(new(assessment.Analyzer), new(*openai.Analyzer)),
	avatar.NewClient,
	message.NewService,
	session.NewService,
	assessment.NewService,
	handlers.NewProvider,
)

// BuildApplication demonstrates how to assemble the server with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		newCipher,
		domainSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}

func newCipher(cfg *config.Config) (*encryption.Cipher, error) {
	return encryption.New(cfg.EncryptionKey)
}
