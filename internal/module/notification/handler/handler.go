package handler

import (
	"context"
	"fmt"

	"marketplace-service/internal/module/notification/models/request"
	"marketplace-service/internal/module/notification/usecases"
	"marketplace-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type NotificationHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *NotificationHandler) List(ctx *fiber.Ctx) error {
	req := request.List{
		UnreadOnly: ctx.QueryBool("unread", false),
		Limit:      helpers.QueryInt(ctx, "limit", 20),
		Offset:     helpers.QueryInt(ctx, "offset", 0),
	}

	resp, err := h.Usecase.List(ctx.UserContext(), helpers.UserID(ctx), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list notifications: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list notifications")
}

func (h *NotificationHandler) UnreadCount(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.UnreadCount(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error count unread notifications: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success count unread notifications")
}

func (h *NotificationHandler) MarkRead(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.MarkRead(ctx.UserContext(), helpers.UserID(ctx), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error mark notification %d read: %v", id, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.MarkAllRead(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error mark all notifications read: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "all notifications marked as read")
}

// TriggerSweep runs one sweep on demand, for an external cron or an operator.
func (h *NotificationHandler) TriggerSweep(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Sweep(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error sweep notifications: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success sweep notifications")
}

// SweepTask is the asynq handler for the periodic sweep.
func (h *NotificationHandler) SweepTask(ctx context.Context, t *asynq.Task) error {
	if _, err := h.Usecase.Sweep(ctx); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error sweep notifications: %v", err))
		return err
	}
	return nil
}

// Sweep adapts the usecase to the in-process scheduler.
func (h *NotificationHandler) Sweep(ctx context.Context) error {
	_, err := h.Usecase.Sweep(ctx)
	return err
}

func (h *NotificationHandler) ConsumeRetry(msg *message.Message) error {
	var req request.Emit
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Usecase.ConsumeRetry(msg.Context(), req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume notification retry: %v", err))
		return err
	}

	return nil
}
