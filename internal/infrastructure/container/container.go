package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lifetree-app/lifetree-backend/internal/config"
	"github.com/lifetree-app/lifetree-backend/internal/delivery/http"
	"github.com/lifetree-app/lifetree-backend/internal/delivery/http/handler"
	"github.com/lifetree-app/lifetree-backend/internal/delivery/http/middleware"
	"github.com/lifetree-app/lifetree-backend/internal/infrastructure/database"
	"github.com/lifetree-app/lifetree-backend/internal/infrastructure/gemini"
	"github.com/lifetree-app/lifetree-backend/internal/infrastructure/logger"
	"github.com/lifetree-app/lifetree-backend/internal/infrastructure/server"
	"github.com/lifetree-app/lifetree-backend/internal/repository/postgres"
	redisrepo "github.com/lifetree-app/lifetree-backend/internal/repository/redis"
	"github.com/lifetree-app/lifetree-backend/internal/usecase/auth"
	"github.com/lifetree-app/lifetree-backend/internal/usecase/insights"
	"github.com/lifetree-app/lifetree-backend/internal/usecase/journal"
	"github.com/lifetree-app/lifetree-backend/internal/usecase/profile"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize logger
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client. AI insights are optional, so a missing
	// or bad API key must not take the whole service down.
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Warn("failed to initialize gemini client, AI insights disabled", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	updateLogRepo := postgres.NewUpdateLogRepository(db)
	visitRepo := postgres.NewVisitRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	workoutRepo := postgres.NewWorkoutRepository(db)
	reflectionRepo := postgres.NewReflectionRepository(db)
	relativeRepo := postgres.NewRelativeRepository(db)
	sessionStore := redisrepo.NewSessionStore(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionStore,
		cfg.JWT.Secret,
		cfg.JWT.SessionTTLDay,
	)

	profileUseCase := profile.NewProfileUseCase(
		userRepo,
		updateLogRepo,
		log,
	)

	journalUseCase := journal.NewJournalUseCase(
		visitRepo,
		bookRepo,
		workoutRepo,
		reflectionRepo,
		relativeRepo,
	)

	insightsUseCase := insights.NewInsightsUseCase(
		userRepo,
		reflectionRepo,
		geminiClient,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	journalHandler := handler.NewJournalHandler(journalUseCase)
	insightsHandler := handler.NewInsightsHandler(insightsUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		journalHandler,
		insightsHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	return nil
}
