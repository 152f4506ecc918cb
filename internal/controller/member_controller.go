package controller

import (
	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/pkg/serverutils"
	"gym-retention-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMemberController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	RecordAttendance(ctx *fiber.Ctx) error
	RecordFeedback(ctx *fiber.Ctx) error
}

type memberController struct {
	memberService service.IMemberService
}

func NewMemberController(memberService service.IMemberService) IMemberController {
	return &memberController{
		memberService: memberService,
	}
}

func (c *memberController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/member/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id/status", c.UpdateStatus)
	h.Post(":id/attendance", c.RecordAttendance)
	h.Post(":id/feedback", c.RecordFeedback)
}

func (c *memberController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.memberService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Member created", res))
}

func (c *memberController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid member id")
	}

	res, err := c.memberService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Member details", res))
}

func (c *memberController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.memberService.List(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Members", res))
}

func (c *memberController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid member id")
	}

	var req dto.UpdateMemberStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.memberService.UpdateStatus(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Member status updated", nil))
}

func (c *memberController) RecordAttendance(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid member id")
	}

	var req dto.RecordAttendanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.MemberId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.memberService.RecordAttendance(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Attendance recorded", nil))
}

func (c *memberController) RecordFeedback(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid member id")
	}

	var req dto.RecordFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.MemberId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.memberService.RecordFeedback(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feedback recorded", nil))
}
