package helpers

import (
	"fmt"
	"strconv"

	"marketplace-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Success bool        `json:"success"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespSuccessWithStatus(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespSuccessWithStatus(ctx, log, fiber.StatusCreated, data, message)
}

func RespSuccessWithStatus(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	err := ctx.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
	if err != nil {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error write response: %v", err))
	}
	return err
}

// RespError writes err as a structured error body; foreign errors are masked as a server fault.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	kind := errors.KindOf(err)
	message := err.Error()
	if kind == errors.KindInternal {
		if _, ok := err.(*errors.ErrorString); !ok {
			message = "internal server error"
		}
	}

	writeErr := ctx.Status(errors.HTTPStatus(err)).JSON(Response{
		Success: false,
		Kind:    string(kind),
		Message: message,
	})
	if writeErr != nil {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error write response: %v", writeErr))
	}
	return writeErr
}

// ParamID reads a positive integer route parameter.
func ParamID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func QueryInt(ctx *fiber.Ctx, name string, def int) int {
	v, err := strconv.Atoi(ctx.Query(name))
	if err != nil || v < 0 {
		return def
	}
	return v
}
