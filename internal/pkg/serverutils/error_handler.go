package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// HTTPError is returned by handlers that already know the status code.
type HTTPError struct {
	Code    int
	Message string
	Detail  string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func NewHTTPError(code int, message, detail string) *HTTPError {
	return &HTTPError{Code: code, Message: message, Detail: detail}
}

// ErrorHandlerMiddleware renders any error returned down the chain as a BaseResponse.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return ctx.Status(httpErr.Code).JSON(ErrorResponseWithDetail(httpErr.Code, httpErr.Message, httpErr.Detail))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponseWithDetail(fiber.StatusInternalServerError, "Internal Server Error", err.Error()),
		)
	}
}
