package controller

import (
	"fmt"

	"ai-datachat-be/internal/dto"
	"ai-datachat-be/internal/pkg/serverutils"
	"ai-datachat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IToolController interface {
	RegisterRoutes(r fiber.Router)
	Invoke(ctx *fiber.Ctx) error
}

type toolController struct {
	toolService service.IToolService
}

func NewToolController(toolService service.IToolService) IToolController {
	return &toolController{
		toolService: toolService,
	}
}

func (c *toolController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tool/v1")
	h.Post("invoke", c.Invoke)
}

func (c *toolController) Invoke(ctx *fiber.Ctx) error {
	var req dto.InvokeToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.toolService.Invoke(ctx.Context(), req.Tool, req.Params)
	if err != nil {
		return err
	}

	// File results ARE the response: attachment bytes, not JSON carrying them
	if result.File != nil {
		ctx.Set(fiber.HeaderContentType, result.File.MimeType)
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, result.File.Filename))
		return ctx.Send(result.File.Content)
	}

	if !result.Success {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.ErrorResponse(500, result.Error))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success invoke tool", result))
}
