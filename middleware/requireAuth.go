package middleware

import (
	"strings"
	"time"

	"month_balance_ms/config"
	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID = "userId"
	LocalEmail  = "email"
)

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := config.Conf.Application.Security.Secret
		issuer := config.Conf.Application.Security.Issuer
		ttl := config.Conf.Application.Security.TokenValidityInSeconds

		jwt := services.NewJWTService([]byte(secret), issuer, time.Duration(ttl)*time.Second)

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid token",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.ParseJWT(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token parse error",
			})
		}

		claims, err := jwt.GetClaims(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}
		c.Locals(LocalUserID, uint(sub))
		if email, ok := claims["email"].(string); ok {
			c.Locals(LocalEmail, email)
		}

		return c.Next()
	}
}

// UserIDFromContext returns the authenticated user id, or false when the
// request carries no validated session.
func UserIDFromContext(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalUserID).(uint)
	return id, ok && id > 0
}
