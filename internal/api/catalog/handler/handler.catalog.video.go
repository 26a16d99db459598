// Package cataloghdl chứa HTTP handlers cho videos và categories.
package cataloghdl

import (
	"errors"
	"strconv"

	basehdl "shindora_cms/internal/api/base/handler"
	catalogdto "shindora_cms/internal/api/catalog/dto"
	catalogmodels "shindora_cms/internal/api/catalog/models"
	catalogsvc "shindora_cms/internal/api/catalog/service"
	"shindora_cms/internal/common"
	"shindora_cms/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// replaceNotFound thay thông điệp "Not found" chung bằng thông điệp của domain,
// giữ nguyên các lỗi khác.
func replaceNotFound(err error, message string) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewError(common.ErrCodeDatabaseQuery, message, common.StatusNotFound, err)
	}
	return err
}

// parseLimit đọc query param limit, trả về defaultLimit khi vắng mặt
func parseLimit(c fiber.Ctx, defaultLimit int64) (int64, error) {
	limit, err := strconv.ParseInt(c.Query("limit", strconv.FormatInt(defaultLimit, 10)), 10, 64)
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Invalid value for parameter 'limit'",
			common.StatusBadRequest,
			err,
		)
	}
	return limit, nil
}

// VideoHandler xử lý các route /api/videos
type VideoHandler struct {
	basehdl.BaseHandler[catalogmodels.Video, catalogdto.VideoCreateInput, catalogdto.VideoUpdateInput]
	videoService *catalogsvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	service, err := catalogsvc.NewVideoService()
	if err != nil {
		return nil, err
	}
	return &VideoHandler{
		videoService: service,
	}, nil
}

// HandleList trả về danh sách video mới nhất.
// Query params: category (tùy chọn), limit (mặc định 50).
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		limit, err := parseLimit(c, catalogsvc.DefaultVideoListLimit)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		videos, err := h.videoService.List(c.Context(), c.Query("category"), limit)
		return h.HandleResponse(c, videos, err)
	})
}

// HandleGet trả về một video theo id và tăng lượt xem
func (h *VideoHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		video, err := h.videoService.GetAndIncrementViews(c.Context(), c.Params("id"))
		return h.HandleResponse(c, video, replaceNotFound(err, "Video not found"))
	})
}

// HandleCreate tạo video mới (admin)
func (h *VideoHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(catalogdto.VideoCreateInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		video, err := h.videoService.Create(c.Context(), input)
		if err == nil {
			logger.LogCRUD("create", "video", video.Id, c, nil)
		}
		return h.HandleResponse(c, video, err)
	})
}

// HandleUpdate cập nhật một phần video theo id (admin).
// Chỉ các trường có mặt trong body mới được ghi.
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(catalogdto.VideoUpdateInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		video, err := h.videoService.Patch(c.Context(), c.Params("id"), input)
		if err == nil {
			logger.LogCRUD("update", "video", video.Id, c, nil)
		}
		return h.HandleResponse(c, video, replaceNotFound(err, "Video not found"))
	})
}

// HandleDelete xóa video theo id (admin)
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		err := h.videoService.Delete(c.Context(), id)
		if err != nil {
			return h.HandleResponse(c, nil, replaceNotFound(err, "Video not found"))
		}

		logger.LogCRUD("delete", "video", id, c, nil)
		return h.HandleResponse(c, fiber.Map{"message": "Video deleted"}, nil)
	})
}

// HandleSearch tìm video theo từ khóa q
func (h *VideoHandler) HandleSearch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := c.Query("q")
		if query == "" {
			return h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Query parameter 'q' is required",
				common.StatusBadRequest,
				nil,
			))
		}

		limit, err := parseLimit(c, catalogsvc.DefaultSearchLimit)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		videos, err := h.videoService.Search(c.Context(), query, limit)
		return h.HandleResponse(c, videos, err)
	})
}

// HandleTrending trả về các video có lượt xem cao nhất
func (h *VideoHandler) HandleTrending(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		limit, err := parseLimit(c, catalogsvc.DefaultTrendingLimit)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		videos, err := h.videoService.Trending(c.Context(), limit)
		return h.HandleResponse(c, videos, err)
	})
}
