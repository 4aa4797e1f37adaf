package main

import (
	"time"

	"month_balance_ms/config"
	"month_balance_ms/controller"
	"month_balance_ms/dtos/request"
	"month_balance_ms/middleware"
	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Server struct {
	WebAuthnController controller.IWebAuthnController
	AuthController     controller.IAuthController
	AdminController    controller.IAdminController
	FeedbackController controller.IFeedbackController
	AnalyticsService   services.IAnalyticsService
	Logger             *zap.Logger
}

func NewServer(
	webAuthnController controller.IWebAuthnController,
	authController controller.IAuthController,
	adminController controller.IAdminController,
	feedbackController controller.IFeedbackController,
	analyticsService services.IAnalyticsService,
	logger *zap.Logger,
) *Server {
	return &Server{
		WebAuthnController: webAuthnController,
		AuthController:     authController,
		AdminController:    adminController,
		FeedbackController: feedbackController,
		AnalyticsService:   analyticsService,
		Logger:             logger,
	}
}

func (s *Server) Start() *fiber.App {
	app := fiber.New()

	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggingMiddleware(s.Logger))
	app.Use(middleware.GlobalRateLimiter())

	contextPath := app.Group(config.Conf.Application.Server.ContextPath)
	apiVersion := contextPath.Group(config.Conf.Application.Server.ApiVersion)

	authGroup := apiVersion.Group("/auth")
	authGroup.Use(middleware.RouteRateLimiter(20, 30*time.Second))

	webauthnGroup := authGroup.Group("/webauthn")
	webauthnGroup.Post("/register/challenge",
		middleware.AuthMiddleware(),
		middleware.ActivityTrackingMiddleware(s.AnalyticsService, s.Logger),
		s.WebAuthnController.RegisterChallenge)
	webauthnGroup.Post("/register",
		middleware.AuthMiddleware(),
		middleware.ActivityTrackingMiddleware(s.AnalyticsService, s.Logger),
		middleware.ValidateBody[request.WebAuthnRegisterRequest](),
		s.WebAuthnController.Register)
	webauthnGroup.Post("/authenticate/challenge",
		middleware.ValidateBody[request.WebAuthnAuthenticateChallengeRequest](),
		s.WebAuthnController.AuthenticateChallenge)
	webauthnGroup.Post("/authenticate",
		middleware.ValidateBody[request.WebAuthnAuthenticateRequest](),
		s.WebAuthnController.Authenticate)

	authGroup.Get("/me",
		middleware.AuthMiddleware(),
		s.AuthController.GetCurrentUser)

	apiVersion.Post("/feedback",
		middleware.AuthMiddleware(),
		middleware.ActivityTrackingMiddleware(s.AnalyticsService, s.Logger),
		middleware.ValidateBody[request.CreateFeedbackRequest](),
		s.FeedbackController.CreateFeedback)

	adminGroup := apiVersion.Group("/admin",
		middleware.AuthMiddleware(),
		middleware.AdminMiddleware(),
		middleware.ActivityTrackingMiddleware(s.AnalyticsService, s.Logger))
	adminGroup.Get("/dashboard", s.AdminController.GetDashboard)
	adminGroup.Get("/users", s.AdminController.GetUsers)
	adminGroup.Get("/feedback", s.AdminController.GetFeedbacks)

	return app
}
