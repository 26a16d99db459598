// Package sitehdl chứa HTTP handlers cho settings và pages.
package sitehdl

import (
	basehdl "shindora_cms/internal/api/base/handler"
	sitedto "shindora_cms/internal/api/site/dto"
	sitemodels "shindora_cms/internal/api/site/models"
	sitesvc "shindora_cms/internal/api/site/service"
	"shindora_cms/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// SettingHandler xử lý các route /api/settings
type SettingHandler struct {
	basehdl.BaseHandler[sitemodels.Setting, sitedto.SettingUpdateInput, sitedto.SettingUpdateInput]
	settingService *sitesvc.SettingService
}

// NewSettingHandler tạo mới SettingHandler
func NewSettingHandler() (*SettingHandler, error) {
	service, err := sitesvc.NewSettingService()
	if err != nil {
		return nil, err
	}
	return &SettingHandler{
		settingService: service,
	}, nil
}

// HandleGet trả về cấu hình site hiện tại
func (h *SettingHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		setting, err := h.settingService.Get(c.Context())
		return h.HandleResponse(c, setting, err)
	})
}

// HandleUpdate cập nhật một phần cấu hình site (admin)
func (h *SettingHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(sitedto.SettingUpdateInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		setting, err := h.settingService.Update(c.Context(), input)
		if err == nil {
			logger.LogCRUD("update", "settings", "", c, nil)
		}
		return h.HandleResponse(c, setting, err)
	})
}

// PageHandler xử lý các route /api/pages/:slug
type PageHandler struct {
	basehdl.BaseHandler[sitemodels.Page, sitedto.PageUpdateInput, sitedto.PageUpdateInput]
	pageService *sitesvc.PageService
}

// NewPageHandler tạo mới PageHandler
func NewPageHandler() (*PageHandler, error) {
	service, err := sitesvc.NewPageService()
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		pageService: service,
	}, nil
}

// HandleGet trả về trang nội dung theo slug
func (h *PageHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, err := h.pageService.Get(c.Context(), c.Params("slug"))
		return h.HandleResponse(c, page, err)
	})
}

// HandleUpdate cập nhật trang nội dung theo slug (admin)
func (h *PageHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(sitedto.PageUpdateInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		slug := c.Params("slug")
		page, err := h.pageService.Update(c.Context(), slug, input)
		if err == nil {
			logger.LogCRUD("update", "page", slug, c, nil)
		}
		return h.HandleResponse(c, page, err)
	})
}
