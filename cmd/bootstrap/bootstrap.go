package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcare-management-system/config"
	deliveryHttp "healthcare-management-system/internal/delivery/http"
	"healthcare-management-system/internal/delivery/http/handler"
	"healthcare-management-system/internal/delivery/http/middleware"
	"healthcare-management-system/internal/infrastructure/cache"
	"healthcare-management-system/internal/infrastructure/database"
	"healthcare-management-system/internal/infrastructure/llm"
	"healthcare-management-system/internal/infrastructure/mail"
	"healthcare-management-system/internal/infrastructure/metrics"
	"healthcare-management-system/internal/infrastructure/storage"
	"healthcare-management-system/internal/repository"
	"healthcare-management-system/internal/scheduler"
	"healthcare-management-system/internal/service"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/jwt"
	"healthcare-management-system/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Scheduler   *scheduler.Scheduler
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App.Env)
	app.Log.Info("Configuration loaded successfully")

	// Apply schema migrations before the pool is opened
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Log.Info("Database migrations applied")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	// Initialize all layers
	if err := app.initialize(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupLogger configures a JSON logrus logger, verbose in development
func setupLogger(env string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// initialize wires repositories, services, usecases and handlers and builds
// the HTTP server and reminder scheduler
func (app *App) initialize() error {
	cfg := app.Config
	log := app.Log

	// Initialize infrastructure
	appMetrics := metrics.New()
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	files, err := storage.NewFileStorage(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}
	mailer := mail.NewMailer(cfg.SMTP, log)
	llmClient, err := llm.NewGeminiClient(context.Background(), cfg.LLM)
	if err != nil {
		return err
	}

	// Initialize repositories
	db := repository.NewTransactor(app.DB)
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	notificationRepo := repository.NewNotificationRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	vitalsRepo := repository.NewVitalsRepository()
	healthRecordRepo := repository.NewHealthRecordRepository()
	heartDataRepo := repository.NewHeartDataRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	clock := usecase.ClockIn(cfg.App.Location())

	// Initialize services
	tokens := service.NewRedisTokenStore(app.RedisClient)
	notifier := service.NewNotificationService(db, log, notificationRepo, appMetrics)
	audit := service.NewAuditService(log, auditLogRepo)
	reminders := service.NewReminderService(db, log, appointmentRepo, prescriptionRepo, notifier, mailer, appMetrics, clock)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokens, files, clock)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, appointmentRepo, notifier, audit, files, clock)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo, notifier, audit, clock)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo, userRepo, notifier, audit)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, userRepo, notifier, mailer, clock)
	vitalsUsecase := usecase.NewVitalsUsecase(db, log, vitalsRepo, userRepo, notifier, llmClient, clock)
	healthRecordUsecase := usecase.NewHealthRecordUsecase(db, log, healthRecordRepo, userRepo, notifier, files)
	heartDataUsecase := usecase.NewHeartDataUsecase(db, log, heartDataRepo, userRepo, llmClient)
	searchUsecase := usecase.NewSearchUsecase(db, log, userRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:         handler.NewAuthHandler(authUsecase, customValidator, cfg.Cookie),
		User:         handler.NewUserHandler(userUsecase, customValidator),
		Appointment:  handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Notification: handler.NewNotificationHandler(notificationUsecase, customValidator),
		Prescription: handler.NewPrescriptionHandler(prescriptionUsecase, customValidator),
		Vitals:       handler.NewVitalsHandler(vitalsUsecase, customValidator),
		HealthRecord: handler.NewHealthRecordHandler(healthRecordUsecase, customValidator),
		HeartData:    handler.NewHeartDataHandler(heartDataUsecase, customValidator),
		Search:       handler.NewSearchHandler(searchUsecase),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
		File:         handler.NewFileHandler(files),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.FrontendURL, cfg.App.DashboardURL)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, appMetrics, appMetrics.Handler(), cfg.Storage.BaseURL, log)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	app.Server = &http.Server{
		Addr:              serverAddr,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Initialize reminder scheduler
	if cfg.Reminder.Enabled {
		app.Scheduler, err = scheduler.New(cfg.Reminder, cfg.App.Location(), log, reminders)
		if err != nil {
			return fmt.Errorf("failed to initialize scheduler: %w", err)
		}
	}

	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if app.Scheduler != nil {
		app.Scheduler.Start()
	}

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Let running reminder scans finish before the pools close
	if app.Scheduler != nil {
		app.Scheduler.Stop()
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
