package controller

import (
	"month_balance_ms/domain"
	"month_balance_ms/dtos/request"
	"month_balance_ms/middleware"
	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type IWebAuthnController interface {
	RegisterChallenge(c *fiber.Ctx) error
	Register(c *fiber.Ctx) error
	AuthenticateChallenge(c *fiber.Ctx) error
	Authenticate(c *fiber.Ctx) error
}

type WebAuthnController struct {
	service   services.IWebAuthnService
	analytics services.IAnalyticsService
}

func NewWebAuthnController(service services.IWebAuthnService, analytics services.IAnalyticsService) IWebAuthnController {
	return &WebAuthnController{service: service, analytics: analytics}
}

// RegisterChallenge starts a registration ceremony for the authenticated
// user.
func (wc *WebAuthnController) RegisterChallenge(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	challenge, err := wc.service.BeginRegistration(userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(challenge)
}

// Register completes a registration ceremony and stores the new credential.
func (wc *WebAuthnController) Register(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	body := c.Locals("body").(*request.WebAuthnRegisterRequest)

	result, err := wc.service.FinishRegistration(userID, body)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}

// AuthenticateChallenge starts an authentication ceremony for the user
// identified by email.
func (wc *WebAuthnController) AuthenticateChallenge(c *fiber.Ctx) error {
	body := c.Locals("body").(*request.WebAuthnAuthenticateChallengeRequest)

	challenge, err := wc.service.BeginAuthentication(body.Email)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(challenge)
}

// Authenticate verifies the signed assertion and returns a session token.
func (wc *WebAuthnController) Authenticate(c *fiber.Ctx) error {
	body := c.Locals("body").(*request.WebAuthnAuthenticateRequest)

	result, err := wc.service.FinishAuthentication(body)
	if err != nil {
		return errorResponse(c, err)
	}

	// The route is unauthenticated, so the tracking middleware cannot see
	// this login; record it here. TrackActivity logs and swallows failures.
	// The header value aliases the connection buffer and the goroutine
	// outlives the handler, so copy it.
	ip := c.IP()
	userAgent := utils.CopyString(c.Get(fiber.HeaderUserAgent))
	go wc.analytics.TrackActivity(result.User.Id, domain.ActivityUserLogin, ip, userAgent)

	return c.JSON(result)
}
