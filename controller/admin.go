package controller

import (
	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	GetDashboard(c *fiber.Ctx) error
	GetUsers(c *fiber.Ctx) error
	GetFeedbacks(c *fiber.Ctx) error
}

type AdminController struct {
	adminService    services.IAdminService
	feedbackService services.IFeedbackService
}

func NewAdminController(adminService services.IAdminService, feedbackService services.IFeedbackService) IAdminController {
	return &AdminController{adminService: adminService, feedbackService: feedbackService}
}

func (ac *AdminController) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := ac.adminService.GetDashboard()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dashboard)
}

func (ac *AdminController) GetUsers(c *fiber.Ctx) error {
	search := c.Query("search")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	users, err := ac.adminService.GetUsers(search, page, pageSize)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(users)
}

func (ac *AdminController) GetFeedbacks(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	feedbacks, err := ac.feedbackService.GetFeedbacks(page, pageSize)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(feedbacks)
}
