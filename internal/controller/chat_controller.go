package controller

import (
	"ai-datachat-be/internal/dto"
	"ai-datachat-be/internal/pkg/serverutils"
	"ai-datachat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SubmitChat(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	ClearConversation(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("chat", c.SubmitChat)
	h.Get("conversation/:datasetId", c.GetConversation)
	h.Delete("conversation/:datasetId", c.ClearConversation)
}

func (c *chatController) SubmitChat(ctx *fiber.Ctx) error {
	var req dto.SubmitChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply, queryResult, err := c.chatService.SubmitChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// Exactly one of the two shapes, selected by the request
	if reply != nil {
		return ctx.JSON(serverutils.SuccessResponse("Success analyze results", reply))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate query", queryResult))
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	datasetId := ctx.Params("datasetId")

	turns := c.chatService.GetConversation(ctx.Context(), datasetId)

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation", dto.GetConversationResponse{
		DatasetId: datasetId,
		Turns:     turns,
	}))
}

func (c *chatController) ClearConversation(ctx *fiber.Ctx) error {
	datasetId := ctx.Params("datasetId")

	c.chatService.ClearConversation(ctx.Context(), datasetId)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear conversation", nil))
}
