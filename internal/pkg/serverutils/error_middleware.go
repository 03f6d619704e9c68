package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the outermost request boundary: client errors map
// to 400, everything else (including panics) becomes a generic 500. The
// process never terminates on a handler failure.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(500, fmt.Sprintf("internal error: %v", r)))
			}
		}()

		if err := ctx.Next(); err != nil {
			var clientErr *ClientError
			if errors.As(err, &clientErr) {
				return ctx.Status(fiber.StatusBadRequest).
					JSON(ErrorResponse(400, clientErr.Message))
			}
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return ctx.Status(fiberErr.Code).
					JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
			}
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(500, err.Error()))
		}
		return nil
	}
}
