package controller

import (
	"uni-assistant-be/internal/dto"
	"uni-assistant-be/internal/pkg/serverutils"
	"uni-assistant-be/internal/service"
	"uni-assistant-be/web"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IAssistantService
}

func NewChatController(service service.IAssistantService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Post("/ask", c.Ask)
	r.Get("/history/:session_id", c.History)
}

// Home serves the embedded browser chat widget.
func (c *chatController) Home(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(web.ChatPage)
}

// Ask is the chat widget's single API call. The response is intentionally the
// bare {"answer": ...} shape the widget consumes; errors become {"error": ...}
// via the error middleware.
func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("session_id")

	res, err := c.service.GetHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
