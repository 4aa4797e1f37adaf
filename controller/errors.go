package controller

import (
	"errors"

	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service errors onto the HTTP surface: unknown
// user/credential -> 404, recoverable ceremony state -> 400, authentication
// failures -> 401, duplicate registration -> 409.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCredentialNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrChallengeNotFound),
		errors.Is(err, services.ErrNoCredentials):
		return fiber.StatusBadRequest
	case services.IsUnauthorized(err):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrCredentialExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
