package controller

import (
	"month_balance_ms/dtos/request"
	"month_balance_ms/middleware"
	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	CreateFeedback(c *fiber.Ctx) error
}

type FeedbackController struct {
	service services.IFeedbackService
}

func NewFeedbackController(service services.IFeedbackService) IFeedbackController {
	return &FeedbackController{service: service}
}

func (fc *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	body := c.Locals("body").(*request.CreateFeedbackRequest)

	var userID *uint
	if id, ok := middleware.UserIDFromContext(c); ok {
		userID = &id
	}

	feedback, err := fc.service.CreateFeedback(userID, body)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}
