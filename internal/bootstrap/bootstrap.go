package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/oms-tech/reviews/internal/app/controllers"
	appMigrations "github.com/oms-tech/reviews/internal/app/migrations"
	appRepos "github.com/oms-tech/reviews/internal/app/repositories"
	appRoutes "github.com/oms-tech/reviews/internal/app/routes"
	appServices "github.com/oms-tech/reviews/internal/app/services"
	"github.com/oms-tech/reviews/internal/config"
	"github.com/oms-tech/reviews/internal/db"
	appMiddleware "github.com/oms-tech/reviews/internal/middleware"
	"github.com/oms-tech/reviews/internal/pkg/logger"
	"github.com/oms-tech/reviews/internal/pkg/reporting"
	"github.com/oms-tech/reviews/internal/pkg/revalidate"
	"github.com/oms-tech/reviews/internal/pkg/verification"
	"github.com/oms-tech/reviews/internal/pkg/webhook"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ReviewService       *appServices.ReviewService
	VerificationService *appServices.VerificationService
	RevalidationService *appServices.RevalidationService
	CourseService       *appServices.CourseService

	Controllers appRoutes.Controllers
	Repos       *appRepos.Repositories
	Verifier    *webhook.Verifier
	Reporter    reporting.Reporter
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the content store connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, clients, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	// Refuse to serve webhooks without a usable signing secret
	verifier, err := webhook.NewVerifier(cfg.Webhook.Secret, cfg.Webhook.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize webhook verifier: %w", err)
	}
	deps.Verifier = verifier

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Reporter = reporting.NewLogReporter(lgr)

	verificationClient := verification.NewHTTPClient(verification.Config{
		BaseURL: cfg.Verification.BaseURL,
		APIKey:  cfg.Verification.APIKey,
		Timeout: cfg.Verification.Timeout,
	})
	revalidateClient := revalidate.NewHTTPClient(revalidate.Config{
		BaseURL: cfg.Revalidation.BaseURL,
		Token:   cfg.Revalidation.Token,
		Timeout: cfg.Revalidation.Timeout,
	})

	deps.ReviewService = appServices.NewReviewService(verificationClient, deps.Repos.ReviewRepository)
	deps.VerificationService = appServices.NewVerificationService(verificationClient)
	deps.RevalidationService = appServices.NewRevalidationService(revalidateClient)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.ReviewRepository,
		deps.Repos.SemesterRepository,
	)

	responder := appMiddleware.NewErrorResponder(deps.Reporter)
	deps.Controllers = appRoutes.Controllers{
		Review:       appControllers.NewReviewController(deps.ReviewService, responder),
		Verification: appControllers.NewVerificationController(deps.VerificationService, responder),
		Webhook: appControllers.NewWebhookController(
			deps.RevalidationService,
			deps.Verifier,
			cfg.Webhook.SignatureHeader,
			responder,
		),
		Course: appControllers.NewCourseController(deps.CourseService, responder),
		Health: appControllers.NewHealthController(database),
	}

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
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.Logger(),
		appMiddleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
