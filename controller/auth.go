package controller

import (
	"month_balance_ms/dtos/response"
	"month_balance_ms/middleware"
	"month_balance_ms/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IAuthController interface {
	GetCurrentUser(c *fiber.Ctx) error
}

type AuthController struct {
	db       *gorm.DB
	userRepo repository.IUserRepository
}

func NewAuthController(db *gorm.DB, userRepo repository.IUserRepository) IAuthController {
	return &AuthController{db: db, userRepo: userRepo}
}

func (ac *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := ac.userRepo.GetByID(ac.db, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(response.NewUserDto(user))
}
