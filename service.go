package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"month_balance_ms/config"
	"month_balance_ms/controller"
	"month_balance_ms/middleware"
	"month_balance_ms/repository"
	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	dbConnection *gorm.DB
	redisClient  *redis.Client
	logger       *zap.Logger

	// Repository
	userRepository       repository.IUserRepository
	credentialRepository repository.ICredentialRepository
	activityRepository   repository.IActivityRepository
	feedbackRepository   repository.IFeedbackRepository

	// Service
	jwtService       services.IJWTService
	challengeCache   services.IChallengeCache
	eventPublisher   services.IActivityEventPublisher
	webAuthnService  services.IWebAuthnService
	analyticsService services.IAnalyticsService
	adminService     services.IAdminService
	feedbackService  services.IFeedbackService

	// Controller
	webAuthnController controller.IWebAuthnController
	authController     controller.IAuthController
	adminController    controller.IAdminController
	feedbackController controller.IFeedbackController
}

func (s *service) Start() {
	log.Info("Opening database connection...")
	s.dbConnection = config.OpenDatabaseConnection(config.Conf.Application.Datasource.PrimaryURL)
	config.Migrate(config.Conf.Application.Datasource.PrimaryURL)

	s.logger = config.InitLogger()
	middleware.InitValidator()

	if config.Conf.Application.Redis.Host != "" {
		log.Info("Opening redis connection...")
		s.redisClient = config.ConnectToRedis(config.Conf.Application.Redis.Host)
	}

	s.DependencyInjection()

	app := NewServer(
		s.webAuthnController,
		s.authController,
		s.adminController,
		s.feedbackController,
		s.analyticsService,
		s.logger,
	).Start()

	log.Info("Server starting..")
	go func() {
		if err := app.Listen(config.Conf.Application.Server.Port); err != nil {
			log.Fatal("Server failed to start")
		}
	}()
	s.gracefulShutdown(app)
}

func (s *service) DependencyInjection() {
	s.jwtService = services.NewJWTService(
		[]byte(config.Conf.Application.Security.Secret),
		config.Conf.Application.Security.Issuer,
		time.Duration(config.Conf.Application.Security.TokenValidityInSeconds)*time.Second,
	)

	// Challenges live in redis when available; the in-process cache is the
	// fallback. Either way losing them only restarts the ceremony.
	if s.redisClient != nil {
		s.challengeCache = services.NewRedisChallengeCache(s.redisClient)
	} else {
		s.challengeCache = services.NewMemoryChallengeCache()
	}

	if len(config.Conf.Application.Kafka.Brokers) > 0 {
		s.eventPublisher = services.NewKafkaActivityEventPublisher(s.logger)
	}

	// Repositories
	s.userRepository = repository.NewUserRepository()
	s.credentialRepository = repository.NewCredentialRepository()
	s.activityRepository = repository.NewActivityRepository()
	s.feedbackRepository = repository.NewFeedbackRepository()

	// Services
	s.webAuthnService = services.NewWebAuthnService(
		s.dbConnection,
		s.userRepository,
		s.credentialRepository,
		s.challengeCache,
		s.jwtService,
		s.logger,
	)
	s.analyticsService = services.NewAnalyticsService(
		s.dbConnection,
		s.activityRepository,
		s.userRepository,
		s.eventPublisher,
		s.logger,
	)
	s.feedbackService = services.NewFeedbackService(s.dbConnection, s.feedbackRepository)
	s.adminService = services.NewAdminService(
		s.dbConnection,
		s.userRepository,
		s.activityRepository,
		s.feedbackRepository,
		s.analyticsService,
	)

	// Controllers
	s.webAuthnController = controller.NewWebAuthnController(s.webAuthnService, s.analyticsService)
	s.authController = controller.NewAuthController(s.dbConnection, s.userRepository)
	s.adminController = controller.NewAdminController(s.adminService, s.feedbackService)
	s.feedbackController = controller.NewFeedbackController(s.feedbackService)
}

func (s *service) gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.Shutdown(); err != nil {
		log.Error("error while shutting down app", err)
	}

	done := make(chan bool)
	go func() {
		config.CloseDatabaseConnection(s.dbConnection)
		done <- true
	}()

	select {
	case <-ctx.Done():
		log.Error("timeout while shutting down database", ctx.Err())
	case <-done:
		log.Info("database is gracefully shutdown")
	}
}
