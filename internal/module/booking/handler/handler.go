package handler

import (
	"context"
	"fmt"

	"marketplace-service/internal/module/booking/models/request"
	"marketplace-service/internal/module/booking/models/response"
	"marketplace-service/internal/module/booking/usecases"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) Create(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, helpers.ValidationMessage(err))
	}

	resp, err := h.Usecase.Create(ctx.UserContext(), helpers.UserID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "booking created")
}

func (h *BookingHandler) ListClient(ctx *fiber.Ctx) error {
	req, err := h.listRequest(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListClient(ctx.UserContext(), helpers.UserID(ctx), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list client bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

func (h *BookingHandler) ListProvider(ctx *fiber.Ctx) error {
	req, err := h.listRequest(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListProvider(ctx.UserContext(), helpers.UserID(ctx), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list provider bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

func (h *BookingHandler) listRequest(ctx *fiber.Ctx) (request.ListBookings, error) {
	var req request.ListBookings
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return req, errors.BadRequest("error parse query")
	}
	if err := h.Validator.Struct(req); err != nil {
		return req, helpers.ValidationMessage(err)
	}
	return req, nil
}

func (h *BookingHandler) Get(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Get(ctx.UserContext(), id, helpers.UserID(ctx), helpers.UserRole(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) Stats(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Stats(ctx.UserContext(), helpers.UserID(ctx), helpers.UserRole(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error booking stats: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success booking stats")
}

func (h *BookingHandler) Cancel(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	// the reason is optional, so is the body
	var req request.CancelBooking
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
		}
		if err := h.Validator.Struct(req); err != nil {
			return helpers.RespError(ctx, h.Log, helpers.ValidationMessage(err))
		}
	}

	resp, err := h.Usecase.Cancel(ctx.UserContext(), id, helpers.UserID(ctx), req.Reason)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "booking cancelled")
}

func (h *BookingHandler) Accept(ctx *fiber.Ctx) error {
	return h.providerAction(ctx, h.Usecase.Accept, "accept", "booking accepted")
}

func (h *BookingHandler) Reject(ctx *fiber.Ctx) error {
	return h.providerAction(ctx, h.Usecase.Reject, "reject", "booking rejected")
}

func (h *BookingHandler) Complete(ctx *fiber.Ctx) error {
	return h.providerAction(ctx, h.Usecase.Complete, "complete", "booking completed")
}

type actionFunc func(ctx context.Context, id int64, actorID int64) (response.Booking, error)

func (h *BookingHandler) providerAction(ctx *fiber.Ctx, fn actionFunc, verb, message string) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := fn(ctx.UserContext(), id, helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error %s booking %d: %v", verb, id, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, message)
}
