package middleware

import (
	"strings"

	"month_balance_ms/config"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware restricts a route group to the configured admin emails.
// It must run after AuthMiddleware, which puts the token email in locals.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals(LocalEmail).(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}

		for _, admin := range config.Conf.Application.Admin.Emails {
			if strings.EqualFold(admin, email) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin access required",
		})
	}
}
