package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gym-retention-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// standard response envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var notFound *apperror.NotFoundError
		var validation *apperror.ValidationError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &notFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, notFound.Error()))
		case errors.As(err, &validation):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validation.Error()))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}
	}
}
