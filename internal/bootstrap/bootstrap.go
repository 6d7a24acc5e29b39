package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coachdesk/internal/app/controllers"
	appMigrations "github.com/yigit/coachdesk/internal/app/migrations"
	appRepos "github.com/yigit/coachdesk/internal/app/repositories"
	appRoutes "github.com/yigit/coachdesk/internal/app/routes"
	appServices "github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/config"
	"github.com/yigit/coachdesk/internal/db"
	appMiddleware "github.com/yigit/coachdesk/internal/middleware"
	"github.com/yigit/coachdesk/internal/pkg/filestorage"
	"github.com/yigit/coachdesk/internal/pkg/logger"
	"github.com/yigit/coachdesk/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Hub         *websocket.Hub
	FileStorage *filestorage.LocalStorage
	// Persistence is nil unless persistence is enabled
	Persistence *appServices.PersistenceService
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "console",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and applies the snapshot migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	migrationsDir := cfg.Persistence.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := appMigrations.NewMigrator(database.Pool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready")
	return database, nil
}

// BuildDependencies wires the record store, services and controllers.
// database may be nil, in which case nothing is persisted.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	baseURL := ""
	if cfg.Server.PublicURL != "" {
		// Must match the static route registered by SetupRouter
		baseURL = strings.TrimRight(cfg.Server.PublicURL, "/") + "/uploads"
	}
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "hub").Logger())
	websocket.SetAllowedOrigins(cfg.Server.AllowedOrigins)

	deps.Services = appServices.NewServices(deps.Repos, appServices.Options{
		Storage:  deps.FileStorage,
		Notifier: deps.Hub,
		Clock:    time.Now,
	}, lgr)

	if database != nil {
		deps.Persistence = appServices.NewPersistenceService(deps.Repos, appRepos.NewSnapshotRepository(database), lgr)
	}

	s := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Student:    appControllers.NewStudentController(s.StudentService),
		Teacher:    appControllers.NewTeacherController(s.TeacherService),
		Course:     appControllers.NewCourseController(s.CourseService),
		Batch:      appControllers.NewBatchController(s.BatchService),
		Enrollment: appControllers.NewEnrollmentController(s.EnrollmentService),
		Exam:       appControllers.NewExamController(s.ExamService),
		ExamResult: appControllers.NewExamResultController(s.ExamResultService),
		Attendance: appControllers.NewAttendanceController(s.AttendanceService),
		Fee:        appControllers.NewFeeController(s.FeeService),
		Message:    appControllers.NewMessageController(s.MessageService, deps.Hub),
		Dashboard:  appControllers.NewDashboardController(s.DashboardService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Server.Mode == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)
	router.NoRoute(appMiddleware.NotFound())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	// Uploaded photos
	router.Static("/uploads", deps.FileStorage.BasePath())
	lgr.Info().Str("path", deps.FileStorage.BasePath()).Msg("Serving uploads")

	return router
}
