package controller

import (
	"prompt-tutor-be/internal/dto"
	"prompt-tutor-be/internal/pkg/serverutils"
	"prompt-tutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/configs", c.ListConfigurations)
	h.Post("/configs", c.CreateConfiguration)
	h.Get("/configs/:id", c.GetConfiguration)
	h.Put("/configs/:id", c.UpdateConfiguration)
	h.Delete("/configs/:id", c.DeleteConfiguration)
	h.Post("/configs/:id/default", c.SetDefaultConfiguration)

	h.Get("/tools", c.ListTools)
	h.Post("/tools", c.CreateTool)
	h.Delete("/tools/:id", c.DeleteTool)

	h.Get("/sessions", c.ListSessions)
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) ListConfigurations(ctx *fiber.Ctx) error {
	res, err := c.service.ListConfigurations(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get configurations", res))
}

func (c *adminController) GetConfiguration(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid configuration id")
	}

	res, err := c.service.GetConfiguration(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get configuration", res))
}

func (c *adminController) CreateConfiguration(ctx *fiber.Ctx) error {
	var req dto.CreateConfigurationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateConfiguration(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create configuration", res))
}

func (c *adminController) UpdateConfiguration(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid configuration id")
	}

	var req dto.UpdateConfigurationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateConfiguration(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update configuration", res))
}

func (c *adminController) DeleteConfiguration(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid configuration id")
	}

	if err := c.service.DeleteConfiguration(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete configuration", nil))
}

func (c *adminController) SetDefaultConfiguration(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid configuration id")
	}

	if err := c.service.SetDefaultConfiguration(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success set default configuration", nil))
}

func (c *adminController) ListTools(ctx *fiber.Ctx) error {
	res, err := c.service.ListTools(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get tools", res))
}

func (c *adminController) CreateTool(ctx *fiber.Ctx) error {
	var req dto.CreateToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTool(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create tool", res))
}

func (c *adminController) DeleteTool(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tool id")
	}

	if err := c.service.DeleteTool(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete tool", nil))
}

func (c *adminController) ListSessions(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListSessions(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}
