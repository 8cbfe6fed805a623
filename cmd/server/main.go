package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tutorlink.backend/internal/config"
	"tutorlink.backend/internal/infrastructure/jobs"
	"tutorlink.backend/internal/infrastructure/realtime"
	"tutorlink.backend/internal/infrastructure/repositories"
	"tutorlink.backend/internal/interfaces/http/handlers"
	"tutorlink.backend/internal/interfaces/http/middleware"
	"tutorlink.backend/internal/usecases"
	"tutorlink.backend/pkg/jwt"
	"tutorlink.backend/pkg/logger"
	"tutorlink.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tutorProfileRepo := repositories.NewTutorProfileRepository(db)
	institutionProfileRepo := repositories.NewInstitutionProfileRepository(db)
	studentProfileRepo := repositories.NewStudentProfileRepository(db)
	verificationRequestRepo := repositories.NewVerificationRequestRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	requirementRepo := repositories.NewRequirementRepository(db)
	conversationRepo := repositories.NewConversationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize realtime notifier
	notifier := realtime.NewNotifier(redis.GetClient())

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, tutorProfileRepo, institutionProfileRepo, studentProfileRepo, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	moderationUsecase := usecases.NewModerationUsecase(userRepo, tutorProfileRepo, institutionProfileRepo, verificationRequestRepo, notifier)
	profileUsecase := usecases.NewProfileUsecase(userRepo, tutorProfileRepo, institutionProfileRepo, studentProfileRepo, verificationRequestRepo)
	courseUsecase := usecases.NewCourseUsecase(courseRepo, enrollmentRepo, userRepo)
	requirementUsecase := usecases.NewRequirementUsecase(requirementRepo, tutorProfileRepo, verificationRequestRepo)
	messageUsecase := usecases.NewMessageUsecase(conversationRepo, messageRepo, userRepo)
	scheduleUsecase := usecases.NewScheduleUsecase(scheduleRepo, courseRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	adminHandler := handlers.NewAdminHandler(moderationUsecase, notifier)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	courseHandler := handlers.NewCourseHandler(courseUsecase)
	requirementHandler := handlers.NewRequirementHandler(requirementUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewRequirementExpiryJob(requirementRepo, cfg.Jobs.RequirementExpiryInterval)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		adminHandler:       adminHandler,
		profileHandler:     profileHandler,
		courseHandler:      courseHandler,
		requirementHandler: requirementHandler,
		messageHandler:     messageHandler,
		scheduleHandler:    scheduleHandler,
		authMiddleware:     authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 TutorLink Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
