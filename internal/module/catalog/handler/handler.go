package handler

import (
	"fmt"
	"mime/multipart"

	"marketplace-service/internal/module/catalog/models/request"
	"marketplace-service/internal/module/catalog/usecases"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CatalogHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *CatalogHandler) bind(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}
	return h.validate(ctx, req)
}

func (h *CatalogHandler) bindQuery(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.QueryParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return errors.BadRequest("error parse query")
	}
	return h.validate(ctx, req)
}

func (h *CatalogHandler) validate(ctx *fiber.Ctx, req interface{}) error {
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.ValidationMessage(err)
	}
	return nil
}

// icon returns the optional "icon" upload.
func icon(ctx *fiber.Ctx) *multipart.FileHeader {
	file, err := ctx.FormFile("icon")
	if err != nil {
		return nil
	}
	return file
}

func (h *CatalogHandler) ListCategories(ctx *fiber.Ctx) error {
	var req request.ListCategories
	if err := h.bindQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListCategories(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list categories: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get categories")
}

func (h *CatalogHandler) GetCategory(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetCategory(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get category: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get category")
}

func (h *CatalogHandler) CreateCategory(ctx *fiber.Ctx) error {
	var req request.CreateCategory
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateCategory(ctx.UserContext(), &req, icon(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create category: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "category created")
}

func (h *CatalogHandler) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateCategory
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateCategory(ctx.UserContext(), id, &req, icon(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update category: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "category updated")
}

func (h *CatalogHandler) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteCategory(ctx.UserContext(), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete category: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "category deleted")
}

func (h *CatalogHandler) CategoryStats(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CategoryStats(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error category stats: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get category stats")
}

func (h *CatalogHandler) PopularCategories(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.PopularCategories(ctx.UserContext(), helpers.QueryInt(ctx, "limit", 0))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error popular categories: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get popular categories")
}

func (h *CatalogHandler) TrendingCategories(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.TrendingCategories(ctx.UserContext(), helpers.QueryInt(ctx, "limit", 0))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error trending categories: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get trending categories")
}

func (h *CatalogHandler) Autocomplete(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Autocomplete(ctx.UserContext(), ctx.Query("q"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error autocomplete categories: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get suggestions")
}

func (h *CatalogHandler) CategoryServices(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.ListServices
	if err := h.bindQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CategoryServices(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error category services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get category services")
}

func (h *CatalogHandler) CreateService(ctx *fiber.Ctx) error {
	var req request.CreateService
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateService(ctx.UserContext(), helpers.UserID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "service created")
}

func (h *CatalogHandler) ListMyServices(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListMyServices(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list provider services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get services")
}

func (h *CatalogHandler) UpdateService(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateService
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateService(ctx.UserContext(), helpers.UserID(ctx), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "service updated")
}

func (h *CatalogHandler) DeleteService(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteService(ctx.UserContext(), helpers.UserID(ctx), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "service deleted")
}

func (h *CatalogHandler) ListServices(ctx *fiber.Ctx) error {
	var req request.ListServices
	if err := h.bindQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListServices(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get services")
}

func (h *CatalogHandler) ServicesByCategory(ctx *fiber.Ctx) error {
	id, err := helpers.ParamID(ctx, "categoryId")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ServicesByCategory(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list category services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get services")
}
