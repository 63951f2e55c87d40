package controller

import (
	"errors"
	"fmt"

	"academic-assistant-be/internal/constant"
	"academic-assistant-be/internal/dto"
	"academic-assistant-be/internal/pkg/serverutils"
	"academic-assistant-be/internal/service"
	"academic-assistant-be/pkg/ai/contract"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Process(ctx *fiber.Ctx) error
	Agents(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("/process", c.Process)
	h.Get("/agents", c.Agents)
	h.Post("/export", c.Export)
	h.Get("/health", c.Health)
}

func (c *assistantController) Process(ctx *fiber.Ctx) error {
	var req dto.ProcessRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Process(ctx.UserContext(), ctx.IP(), &req)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process request", res))
}

func (c *assistantController) Agents(ctx *fiber.Ctx) error {
	res := c.service.DefaultAgents(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success get agents", res))
}

func (c *assistantController) Export(ctx *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Export(ctx.UserContext(), &req)
	if err != nil {
		return toAppError(err)
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	return ctx.SendString(res.Content)
}

func (c *assistantController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success health check", c.service.Health()))
}

// toAppError maps assistant failures to a status and a single-line user message.
func toAppError(err error) error {
	if msg, ok := contract.UserMessage(err); ok {
		code := fiber.StatusBadGateway
		if errors.Is(err, contract.ErrConfiguration) {
			code = fiber.StatusServiceUnavailable
		}
		return serverutils.NewAppError(code, msg, err)
	}

	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return serverutils.NewAppError(fiber.StatusBadRequest, constant.UserMessageEmptyInput, err)
	case errors.Is(err, service.ErrInputTooLong):
		return serverutils.NewAppError(fiber.StatusRequestEntityTooLarge, constant.UserMessageInputTooLong, err)
	case errors.Is(err, service.ErrInvalidMode):
		return serverutils.NewAppError(fiber.StatusBadRequest, constant.UserMessageInvalidMode, err)
	case errors.Is(err, service.ErrRequestInFlight):
		return serverutils.NewAppError(fiber.StatusTooManyRequests, constant.UserMessageInFlight, err)
	}
	return err
}
