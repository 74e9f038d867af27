package handler

import (
	"fmt"

	"marketplace-service/internal/module/user/models/request"
	"marketplace-service/internal/module/user/usecases"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const forgotPasswordMessage = "if this email is registered, a reset code has been sent"

type UserHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// bind parses the body into req and validates it.
func (h *UserHandler) bind(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.ValidationMessage(err)
	}
	return nil
}

func (h *UserHandler) RegisterClient(ctx *fiber.Ctx) error {
	var req request.Register
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.RegisterClient(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register client: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "client registered")
}

func (h *UserHandler) RegisterProvider(ctx *fiber.Ctx) error {
	var req request.Register
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.RegisterProvider(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register provider: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "provider registered")
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "login successful")
}

func (h *UserHandler) GoogleLogin(ctx *fiber.Ctx) error {
	var req request.GoogleLogin
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GoogleLogin(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error google login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "google login successful")
}

// Logout is stateless; the client drops its token.
func (h *UserHandler) Logout(ctx *fiber.Ctx) error {
	return helpers.RespSuccess(ctx, h.Log, nil, "logged out, discard the token")
}

func (h *UserHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var req request.ForgotPassword
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.ForgotPassword(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error forgot password: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, forgotPasswordMessage)
}

func (h *UserHandler) ResetPassword(ctx *fiber.Ctx) error {
	var req request.ResetPassword
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.ResetPassword(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error reset password: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "password reset")
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Me(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get profile: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get profile")
}

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	var req request.UpdateProfile
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateProfile(ctx.UserContext(), helpers.UserID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update profile: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "profile updated")
}

func (h *UserHandler) UploadAvatar(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("avatar")
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("avatar file is required"))
	}

	resp, err := h.Usecase.UploadAvatar(ctx.UserContext(), helpers.UserID(ctx), file)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error upload avatar: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "avatar updated")
}

func (h *UserHandler) DeleteAvatar(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteAvatar(ctx.UserContext(), helpers.UserID(ctx)); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete avatar: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "avatar deleted")
}
