package handler

import (
	"fmt"

	"marketplace-service/internal/module/wallet/models/request"
	"marketplace-service/internal/module/wallet/usecases"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type WalletHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *WalletHandler) GetWallet(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetWallet(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get wallet: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get wallet")
}

func (h *WalletHandler) ListTransactions(ctx *fiber.Ctx) error {
	req := request.ListTransactions{
		Limit:  helpers.QueryInt(ctx, "limit", 20),
		Offset: helpers.QueryInt(ctx, "offset", 0),
	}

	resp, err := h.Usecase.ListTransactions(ctx.UserContext(), helpers.UserID(ctx), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list wallet transactions: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list wallet transactions")
}

func (h *WalletHandler) RequestWithdrawal(ctx *fiber.Ctx) error {
	var req request.Withdrawal
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, helpers.ValidationMessage(err))
	}

	resp, err := h.Usecase.RequestWithdrawal(ctx.UserContext(), helpers.UserID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error request withdrawal: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success request withdrawal")
}

func (h *WalletHandler) ListWithdrawals(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListWithdrawals(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list withdrawals: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list withdrawals")
}

func (h *WalletHandler) ListOpenWithdrawals(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListOpenWithdrawals(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list open withdrawals: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list open withdrawals")
}

func (h *WalletHandler) ResolveWithdrawal(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.ResolveWithdrawal
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, helpers.ValidationMessage(err))
	}

	resp, err := h.Usecase.ResolveWithdrawal(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error resolve withdrawal %d: %v", id, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success resolve withdrawal")
}

func (h *WalletHandler) GetPayment(ctx *fiber.Ctx) error {
	bookingID, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetPayment(ctx.UserContext(), bookingID, helpers.UserID(ctx), helpers.UserRole(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get payment")
}
