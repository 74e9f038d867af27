package handler

import (
	"fmt"

	"marketplace-service/internal/module/provider/models/request"
	"marketplace-service/internal/module/provider/usecases"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ProviderHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ProviderHandler) bind(ctx *fiber.Ctx, req interface{}) error {
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

func (h *ProviderHandler) GetProfile(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetProfile(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get provider profile: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get provider profile")
}

func (h *ProviderHandler) UpdateProfile(ctx *fiber.Ctx) error {
	var req request.UpdateProfile
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateProfile(ctx.UserContext(), helpers.UserID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update provider profile: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "provider profile updated")
}

func (h *ProviderHandler) UpdateLocation(ctx *fiber.Ctx) error {
	var req request.UpdateLocation
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateLocation(ctx.UserContext(), helpers.UserID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update location: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "location updated")
}

func (h *ProviderHandler) VerificationStatus(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.VerificationStatus(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get verification status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get verification status")
}

// UploadDocument expects a multipart "file" and an optional "type" field.
func (h *ProviderHandler) UploadDocument(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("document file is required"))
	}

	req := request.UploadDocument{Type: ctx.FormValue("type")}
	if err := h.Validator.Struct(&req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationMessage(err))
	}

	resp, err := h.Usecase.UploadDocument(ctx.UserContext(), helpers.UserID(ctx), req.Type, file)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error upload document: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "document uploaded")
}

func (h *ProviderHandler) ListDocuments(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListDocuments(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list documents: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get documents")
}

func (h *ProviderHandler) DeleteDocument(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteDocument(ctx.UserContext(), helpers.UserID(ctx), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete document: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "document deleted")
}
