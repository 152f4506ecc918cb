package controller

import (
	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/pkg/serverutils"
	"gym-retention-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	Notification(ctx *fiber.Ctx) error
	SweepOverdue(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment/v1")
	// The gateway calls the webhook unauthenticated; the signature check
	// inside the service is the gate.
	h.Post("notification", c.Notification)

	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Post("checkout", serverutils.JwtMiddleware, c.Checkout)
	h.Post("sweep-overdue", serverutils.JwtMiddleware, c.SweepOverdue)
}

func (c *paymentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CreatePayment(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment created", res))
}

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.Checkout(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *paymentController) Notification(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	if err := c.paymentService.HandleNotification(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notification processed", nil))
}

func (c *paymentController) SweepOverdue(ctx *fiber.Ctx) error {
	res, err := c.paymentService.SweepOverdue(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Overdue sweep completed", res))
}
