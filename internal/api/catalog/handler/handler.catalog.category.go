package cataloghdl

import (
	basehdl "shindora_cms/internal/api/base/handler"
	catalogdto "shindora_cms/internal/api/catalog/dto"
	catalogmodels "shindora_cms/internal/api/catalog/models"
	catalogsvc "shindora_cms/internal/api/catalog/service"
	"shindora_cms/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý các route /api/categories
type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryInput, catalogdto.CategoryInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, err
	}
	return &CategoryHandler{
		categoryService: service,
	}, nil
}

// HandleList trả về toàn bộ danh mục
func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.categoryService.List(c.Context())
		return h.HandleResponse(c, categories, err)
	})
}

// HandleCreate tạo danh mục mới (admin)
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(catalogdto.CategoryInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		category, err := h.categoryService.Create(c.Context(), input)
		if err == nil {
			logger.LogCRUD("create", "category", category.Id, c, nil)
		}
		return h.HandleResponse(c, category, err)
	})
}

// HandleUpdate thay toàn bộ nội dung danh mục theo id (admin)
func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(catalogdto.CategoryInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		category, err := h.categoryService.Replace(c.Context(), c.Params("id"), input)
		if err == nil {
			logger.LogCRUD("update", "category", category.Id, c, nil)
		}
		return h.HandleResponse(c, category, replaceNotFound(err, "Category not found"))
	})
}

// HandleDelete xóa danh mục theo id (admin)
func (h *CategoryHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		err := h.categoryService.Delete(c.Context(), id)
		if err != nil {
			return h.HandleResponse(c, nil, replaceNotFound(err, "Category not found"))
		}

		logger.LogCRUD("delete", "category", id, c, nil)
		return h.HandleResponse(c, fiber.Map{"message": "Category deleted"}, nil)
	})
}
