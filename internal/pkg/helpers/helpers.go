package helpers

import (
	stderrors "errors"

	"limo-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespWithStatus(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespWithStatus(ctx, log, fiber.StatusCreated, data, message)
}

func RespWithStatus(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	resp := Response{
		Meta: Meta{Code: status, Message: message},
		Data: data,
	}
	if err := ctx.Status(status).JSON(resp); err != nil {
		log.Ctx(ctx.UserContext()).Error("error write response", zap.Error(err))
		return err
	}
	return nil
}

// RespError answers with the status carried by err's kind. Messages of
// unexpected errors are not leaked to the client.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	status := errors.StatusCode(err)
	kind := errors.KindOf(err)

	message := "internal server error"
	var ce *errors.CustomError
	if stderrors.As(err, &ce) && kind != errors.KindInternal && kind != errors.KindStore {
		message = ce.Message
	}

	resp := Response{
		Meta: Meta{Code: status, Message: message, Error: string(kind)},
	}
	if status >= fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error("request failed", zap.Error(err), zap.String("path", ctx.Path()))
	}
	return ctx.Status(status).JSON(resp)
}
