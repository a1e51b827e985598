package controller

import (
	"errors"
	"fmt"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMeetingController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	DeleteMany(ctx *fiber.Ctx) error
}

type meetingController struct {
	service service.IMeetingService
}

func NewMeetingController(service service.IMeetingService) IMeetingController {
	return &meetingController{service: service}
}

func (c *meetingController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/meeting/v1")
	for _, mw := range middlewares {
		h.Use(mw)
	}
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("delete-many", c.DeleteMany)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *meetingController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals(serverutils.UserIdLocal).(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateMeetingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewHTTPError(fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return meetingError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create meeting", res))
}

func (c *meetingController) GetAll(ctx *fiber.Ctx) error {
	filters := ctx.Queries()
	delete(filters, "limit")
	delete(filters, "offset")

	req := dto.ListMeetingRequest{
		Filters: filters,
		Limit:   ctx.QueryInt("limit", 0),
		Offset:  ctx.QueryInt("offset", 0),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), &req)
	if err != nil {
		return meetingError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all meeting", res))
}

func (c *meetingController) Show(ctx *fiber.Ctx) error {
	id, err := meetingIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return meetingError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show meeting", res))
}

func (c *meetingController) Delete(ctx *fiber.Ctx) error {
	id, err := meetingIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return meetingError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Meeting deleted successfully", res))
}

func (c *meetingController) DeleteMany(ctx *fiber.Ctx) error {
	var ids []string
	if err := ctx.BodyParser(&ids); err != nil {
		return serverutils.NewHTTPError(fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	res, err := c.service.DeleteMany(ctx.Context(), ids)
	if err != nil {
		return meetingError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Meetings removed successfully", res))
}

func meetingIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw := ctx.Params("id")
	if !entity.IsValidReference(raw) {
		return uuid.Nil, meetingError(&service.ValidationError{Field: "id", Value: raw})
	}
	return uuid.MustParse(raw), nil
}

// meetingError maps service failures onto one status table:
// validation 400, not found 404, store 500.
func meetingError(err error) error {
	var verr *service.ValidationError
	var perr *service.PersistenceError

	switch {
	case errors.As(err, &verr):
		return serverutils.NewHTTPError(fiber.StatusBadRequest, fmt.Sprintf("Invalid %s value", verr.Field), verr.Error())
	case errors.Is(err, service.ErrMeetingNotFound):
		return serverutils.NewHTTPError(fiber.StatusNotFound, "No data found.", "")
	case errors.Is(err, service.ErrMeetingsNotRemoved):
		return serverutils.NewHTTPError(fiber.StatusNotFound, "Failed to remove meetings", "")
	case errors.As(err, &perr):
		return serverutils.NewHTTPError(fiber.StatusInternalServerError, "Failed to "+perr.Op, perr.Err.Error())
	default:
		return err
	}
}
