package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusos/campusos/internal/app/controllers"
	appMigrations "github.com/campusos/campusos/internal/app/migrations"
	appRepos "github.com/campusos/campusos/internal/app/repositories"
	appRoutes "github.com/campusos/campusos/internal/app/routes"
	appServices "github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/config"
	"github.com/campusos/campusos/internal/db"
	appMiddleware "github.com/campusos/campusos/internal/middleware"
	pkgAuth "github.com/campusos/campusos/internal/pkg/auth"
	"github.com/campusos/campusos/internal/pkg/genai"
	"github.com/campusos/campusos/internal/pkg/helpers"
	"github.com/campusos/campusos/internal/pkg/logger"
	"github.com/campusos/campusos/internal/pkg/notify"
	"github.com/campusos/campusos/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	NoticeService        appServices.NoticeService
	StudyPlanService     appServices.StudyPlanService
	AssessmentService    appServices.AssessmentService
	CampusService        appServices.CampusService
	MaterialService      appServices.MaterialService
	AssistantService     appServices.AssistantService
	AuthController       *appControllers.AuthController
	NoticeController     *appControllers.NoticeController
	StudyPlanController  *appControllers.StudyPlanController
	AssessmentController *appControllers.AssessmentController
	CampusController     *appControllers.CampusController
	MaterialController   *appControllers.MaterialController
	AssistantController  *appControllers.AssistantController
	HealthController     *appControllers.HealthController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	GenAIClient          *genai.Client
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the demo dataset when the database is empty.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.GenAIClient = genai.NewClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		BaseURL: cfg.GenAI.BaseURL,
		Timeout: helpers.ParseDuration(cfg.GenAI.Timeout, 30*time.Second),
	}, lgr)

	notifier := notify.NewEmailNotifier(notify.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		ListAddr:  cfg.SMTP.ListAddr,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository, notifier, lgr)
	deps.StudyPlanService = appServices.NewStudyPlanService(deps.Repos.StudyPlanRepository, deps.GenAIClient, lgr)
	deps.AssessmentService = appServices.NewAssessmentService(deps.Repos.AssessmentRepository)
	deps.CampusService = appServices.NewCampusService(deps.Repos.JobRepository, deps.Repos.CalendarRepository)
	deps.MaterialService = appServices.NewMaterialService(deps.Repos.MaterialRepository)
	deps.AssistantService = appServices.NewAssistantService(deps.GenAIClient, deps.NoticeService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)
	deps.StudyPlanController = appControllers.NewStudyPlanController(deps.StudyPlanService)
	deps.AssessmentController = appControllers.NewAssessmentController(deps.AssessmentService)
	deps.CampusController = appControllers.NewCampusController(deps.CampusService)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService)
	deps.AssistantController = appControllers.NewAssistantController(deps.AssistantService)
	deps.HealthController = appControllers.NewHealthController(dbPool)

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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.NoticeController,
		deps.StudyPlanController,
		deps.AssessmentController,
		deps.CampusController,
		deps.MaterialController,
		deps.AssistantController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}
