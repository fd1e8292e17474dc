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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/senatehub/internal/app/controllers"
	appMigrations "github.com/yigit/senatehub/internal/app/migrations"
	appRepos "github.com/yigit/senatehub/internal/app/repositories"
	appRoutes "github.com/yigit/senatehub/internal/app/routes"
	appServices "github.com/yigit/senatehub/internal/app/services"
	"github.com/yigit/senatehub/internal/config"
	"github.com/yigit/senatehub/internal/db"
	appMiddleware "github.com/yigit/senatehub/internal/middleware"
	"github.com/yigit/senatehub/internal/pkg/logger"
	"github.com/yigit/senatehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AssignmentService      appServices.AssignmentService
	CommitteeService       appServices.CommitteeService
	FacultyService         appServices.FacultyService
	SlotRequirementService appServices.SlotRequirementService
	SenateDivisionService  appServices.SenateDivisionService
	DepartmentService      appServices.DepartmentService
	AssociationService     appServices.AssociationService
	SurveyService          appServices.SurveyService

	AssignmentController      *appControllers.AssignmentController
	CommitteeController       *appControllers.CommitteeController
	FacultyController         *appControllers.FacultyController
	SlotRequirementController *appControllers.SlotRequirementController
	SenateDivisionController  *appControllers.SenateDivisionController
	DepartmentController      *appControllers.DepartmentController
	AssociationController     *appControllers.AssociationController
	SurveyController          *appControllers.SurveyController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the senate division reference data.
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
	lgr.Info().Msg("Database connection successfully established.")

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

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Reference rows are convenience data only; keep starting.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AssignmentService = appServices.NewAssignmentService(deps.Repos.AssignmentRepository)
	deps.CommitteeService = appServices.NewCommitteeService(deps.Repos.CommitteeRepository, deps.Repos.SlotLedger)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.SlotRequirementService = appServices.NewSlotRequirementService(deps.Repos.SlotRequirementRepository)
	deps.SenateDivisionService = appServices.NewSenateDivisionService(deps.Repos.SenateDivisionRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.AssociationService = appServices.NewAssociationService(deps.Repos.AssociationRepository)
	deps.SurveyService = appServices.NewSurveyService(deps.Repos.SurveyRepository)

	baseURL := cfg.Server.BaseURL
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService, baseURL)
	deps.CommitteeController = appControllers.NewCommitteeController(deps.CommitteeService, baseURL)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService, baseURL)
	deps.SlotRequirementController = appControllers.NewSlotRequirementController(deps.SlotRequirementService, baseURL)
	deps.SenateDivisionController = appControllers.NewSenateDivisionController(deps.SenateDivisionService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.AssociationController = appControllers.NewAssociationController(deps.AssociationService, baseURL)
	deps.SurveyController = appControllers.NewSurveyController(deps.SurveyService, baseURL)

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
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(lgr),
	)

	appRoutes.SetupRouter(router,
		deps.AssignmentController,
		deps.CommitteeController,
		deps.FacultyController,
		deps.SlotRequirementController,
		deps.SenateDivisionController,
		deps.DepartmentController,
		deps.AssociationController,
		deps.SurveyController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
