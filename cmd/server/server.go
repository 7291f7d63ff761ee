package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
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
	"caresma-server/internal/infrastructure/observability"
	"caresma-server/internal/infrastructure/openai"
	assessmentrepo "caresma-server/internal/infrastructure/repository/assessment"
	messagerepo "caresma-server/internal/infrastructure/repository/message"
	sessionrepo "caresma-server/internal/infrastructure/repository/session"
	"caresma-server/internal/interfaces/httpserver"
	"caresma-server/internal/interfaces/httpserver/handlers"
)

// Application bundles the long-running pieces of the server process.
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

// NewApplication constructs the application.
func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the HTTP server until the context is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	cipher, err := encryption.New(cfg.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize content cipher")
	}

	messageRepository := messagerepo.NewRepository(db, cipher, log)
	sessionRepository := sessionrepo.NewRepository(db)
	assessmentRepository := assessmentrepo.NewRepository(db)

	analyzer := openai.NewAnalyzer(cfg, log)

	var avatarClient *avatar.Client
	if cfg.HeyGenAPIKey != "" {
		avatarClient = avatar.NewClient(cfg, log)
	} else {
		log.Warn().Msg("HEYGEN_API_KEY not set, avatar routes disabled")
	}

	messageService := message.NewService(messageRepository, log)
	sessionService := session.NewService(sessionRepository, log)
	assessmentService := assessment.NewService(assessmentRepository, analyzer, log)

	handlerProvider := handlers.NewProvider(messageService, sessionService, assessmentService, avatarClient, log)

	httpServer := httpserver.New(cfg, log, db, handlerProvider, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
