package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	appControllers "github.com/ecan/gradtrack/internal/app/controllers"
	appMigrations "github.com/ecan/gradtrack/internal/app/migrations"
	appRepos "github.com/ecan/gradtrack/internal/app/repositories"
	appRoutes "github.com/ecan/gradtrack/internal/app/routes"
	appServices "github.com/ecan/gradtrack/internal/app/services"
	"github.com/ecan/gradtrack/internal/config"
	"github.com/ecan/gradtrack/internal/db"
	appMiddleware "github.com/ecan/gradtrack/internal/middleware"
	pkgAuth "github.com/ecan/gradtrack/internal/pkg/auth"
	"github.com/ecan/gradtrack/internal/pkg/filestorage"
	"github.com/ecan/gradtrack/internal/pkg/helpers"
	"github.com/ecan/gradtrack/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService               *appServices.AuthService
	UserService               *appServices.UserService
	ProgramService            *appServices.ProgramService
	DocumentService           *appServices.DocumentService
	ProgramDocumentService    *appServices.ProgramDocumentService
	AuthController            *appControllers.AuthController
	UserController            *appControllers.UserController
	ProgramController         *appControllers.ProgramController
	DocumentController        *appControllers.DocumentController
	ProgramDocumentController *appControllers.ProgramDocumentController
	AuthMiddleware            *appMiddleware.AuthMiddleware
	Repos                     *appRepos.Repositories
	JWTService                *pkgAuth.JWTService
	Logger                    zerolog.Logger
	FileStorage               *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// One-shot sweep of expired refresh tokens at startup
	cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelCleanup()
	if removed, err := deps.Repos.TokenRepository.CleanupExpiredTokens(cleanupCtx); err != nil {
		lgr.Warn().Err(err).Msg("Failed to clean up expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Cleaned up expired refresh tokens")
	}

	// File storage base URL must match the static file serving path
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port + cfg.Storage.BaseURL
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, lgr)
	deps.DocumentService = appServices.NewDocumentService(deps.Repos.DocumentRepository, deps.FileStorage, lgr)
	deps.ProgramDocumentService = appServices.NewProgramDocumentService(
		deps.Repos.ProgramRepository,
		deps.Repos.DocumentRepository,
		deps.Repos.ProgramDocumentRepository,
		database,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService)
	deps.ProgramDocumentController = appControllers.NewProgramDocumentController(deps.ProgramDocumentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ProgramController,
		deps.DocumentController,
		deps.ProgramDocumentController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
