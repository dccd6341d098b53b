package controller

import (
	"samvidhan-ai-be/internal/dto"
	"samvidhan-ai-be/internal/pkg/serverutils"
	"samvidhan-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatuteController interface {
	RegisterRoutes(r fiber.Router)
	IngestSection(ctx *fiber.Ctx) error
}

type statuteController struct {
	service service.IStatuteService
}

func NewStatuteController(service service.IStatuteService) IStatuteController {
	return &statuteController{service: service}
}

func (c *statuteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/statutes", serverutils.JwtMiddleware)
	h.Post("/ingest", c.IngestSection)
}

func (c *statuteController) IngestSection(ctx *fiber.Ctx) error {
	var req dto.IngestSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.IngestSection(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Section queued for embedding", nil))
}
