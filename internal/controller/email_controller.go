package controller

import (
	"ai-datachat-be/internal/dto"
	"ai-datachat-be/internal/pkg/serverutils"
	"ai-datachat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEmailController interface {
	RegisterRoutes(r fiber.Router)
	SendEmail(ctx *fiber.Ctx) error
	SendReminder(ctx *fiber.Ctx) error
	SendBulkReminders(ctx *fiber.Ctx) error
}

type emailController struct {
	reminderService service.IReminderService
}

func NewEmailController(reminderService service.IReminderService) IEmailController {
	return &emailController{
		reminderService: reminderService,
	}
}

func (c *emailController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/email/v1")
	h.Post("send", c.SendEmail)
	// Single and bulk are separate routes: the endpoint, not the payload
	// shape, discriminates them
	h.Post("invoice-reminder", c.SendReminder)
	h.Post("invoice-reminders", c.SendBulkReminders)
}

func (c *emailController) SendEmail(ctx *fiber.Ctx) error {
	var req dto.SendEmailParams
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	outcome, err := c.reminderService.SendRawEmail(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Email processed", outcome))
}

func (c *emailController) SendReminder(ctx *fiber.Ctx) error {
	var req dto.SendReminderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	outcome, err := c.reminderService.SendInvoiceReminder(ctx.Context(), req.ReminderRecipient, req.Provider)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Reminder processed", outcome))
}

func (c *emailController) SendBulkReminders(ctx *fiber.Ctx) error {
	var req dto.SendBulkRemindersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.reminderService.SendBulkInvoiceReminders(ctx.Context(), req.Recipients, req.Provider)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Bulk reminders processed", result))
}
