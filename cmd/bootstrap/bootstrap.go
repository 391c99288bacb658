package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-booking-api/config"
	deliveryHttp "salon-booking-api/internal/delivery/http"
	"salon-booking-api/internal/delivery/http/handler"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/infrastructure/cache"
	"salon-booking-api/internal/infrastructure/database"
	"salon-booking-api/internal/repository"
	"salon-booking-api/internal/service"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/jwt"
	"salon-booking-api/pkg/validator"

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
	Reminder    *service.ReminderService

	reminderCancel context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, reminder := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Reminder = reminder

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates the HTTP server and the reminder sweeper
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.ReminderService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	categoryRepo := repository.NewCategoryRepository()
	serviceRepo := repository.NewServiceRepository()
	staffRepo := repository.NewStaffRepository()
	staffHoursRepo := repository.NewStaffHoursRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	blockedPhoneRepo := repository.NewBlockedPhoneRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize notification channels
	var mailer service.Mailer
	if cfg.Mail.SMTPHost != "" {
		mailer = service.NewSMTPMailer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.From)
	} else {
		log.Warn("SMTP not configured, emails will be discarded")
		mailer = service.NewNoopMailer()
	}

	var sms service.SMSSender
	if cfg.SMS.WebhookURL != "" {
		sms = service.NewWebhookSMSSender(cfg.SMS.WebhookURL, cfg.SMS.Token)
	} else {
		sms = service.NewNoopSMSSender()
	}

	notifier := service.NewNotificationService(log, mailer, sms, cfg.Salon)
	reminder := service.NewReminderService(db, log, appointmentRepo, staffRepo, notifier, cfg.Reminder)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient)
	categoryUsecase := usecase.NewCategoryUsecase(db, log, categoryRepo)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, categoryRepo)
	staffUsecase := usecase.NewStaffUsecase(db, log, staffRepo)
	staffHoursUsecase := usecase.NewStaffHoursUsecase(db, log, staffRepo, staffHoursRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, staffRepo, staffHoursRepo, appointmentRepo, cfg.Booking.SlotStepMin, cfg.Booking.HorizonDays)
	bookingUsecase := usecase.NewBookingUsecase(db, log, staffRepo, staffHoursRepo, serviceRepo, appointmentRepo, blockedPhoneRepo, notifier)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, blockedPhoneRepo, cfg.Booking.NoShowBlockThreshold)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	categoryHandler := handler.NewCategoryHandler(categoryUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	staffHandler := handler.NewStaffHandler(staffUsecase, staffHoursUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		categoryHandler,
		serviceHandler,
		staffHandler,
		availabilityHandler,
		bookingHandler,
		appointmentHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, reminder
}

// Run starts the HTTP server and the reminder sweep, then handles graceful
// shutdown
func (app *App) Run() {
	// Start reminder sweep in the background
	reminderCtx, cancel := context.WithCancel(context.Background())
	app.reminderCancel = cancel
	go app.Reminder.Run(reminderCtx)

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Stop the reminder sweep
	if app.reminderCancel != nil {
		app.reminderCancel()
	}

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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
