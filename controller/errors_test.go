package controller

import (
	"errors"
	"testing"

	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user not found", services.ErrUserNotFound, fiber.StatusNotFound},
		{"credential not found", services.ErrCredentialNotFound, fiber.StatusNotFound},
		{"challenge expired", services.ErrChallengeNotFound, fiber.StatusBadRequest},
		{"no credentials", services.ErrNoCredentials, fiber.StatusBadRequest},
		{"challenge mismatch", services.ErrChallengeMismatch, fiber.StatusUnauthorized},
		{"origin mismatch", services.ErrOriginMismatch, fiber.StatusUnauthorized},
		{"invalid signature", services.ErrInvalidSignature, fiber.StatusUnauthorized},
		{"counter replay", services.ErrCounterReplay, fiber.StatusUnauthorized},
		{"duplicate credential", services.ErrCredentialExists, fiber.StatusConflict},
		{"unknown error", errors.New("database exploded"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
