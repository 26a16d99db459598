// Package translatehdl chứa HTTP handler cho dịch vụ dịch thuật.
package translatehdl

import (
	"time"

	basehdl "shindora_cms/internal/api/base/handler"
	translatedto "shindora_cms/internal/api/translate/dto"
	translatesvc "shindora_cms/internal/api/translate/service"
	"shindora_cms/internal/global"

	"github.com/gofiber/fiber/v3"
)

// TranslateHandler xử lý route /api/translate
type TranslateHandler struct {
	basehdl.BaseHandler[interface{}, translatedto.TranslateInput, interface{}]
	translateService *translatesvc.TranslateService
}

// NewTranslateHandler tạo mới TranslateHandler từ cấu hình server toàn cục
func NewTranslateHandler() *TranslateHandler {
	endpoint := "https://libretranslate.com/translate"
	timeout := 10 * time.Second
	cacheTTL := time.Duration(0)
	if cfg := global.MongoDB_ServerConfig; cfg != nil {
		if cfg.TranslateEndpoint != "" {
			endpoint = cfg.TranslateEndpoint
		}
		if cfg.TranslateTimeoutSec > 0 {
			timeout = time.Duration(cfg.TranslateTimeoutSec) * time.Second
		}
		cacheTTL = time.Duration(cfg.TranslateCacheTTL) * time.Second
	}
	return &TranslateHandler{
		translateService: translatesvc.NewTranslateService(endpoint, timeout, cacheTTL),
	}
}

// Service trả về translate service mà handler đang dùng
func (h *TranslateHandler) Service() *translatesvc.TranslateService {
	return h.translateService
}

// HandleTranslate dịch văn bản qua dịch vụ bên ngoài.
// Luôn trả về 200 với translatedText, kể cả khi dịch vụ bên ngoài lỗi.
func (h *TranslateHandler) HandleTranslate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(translatedto.TranslateInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		result := h.translateService.Translate(c.Context(), input)
		return h.HandleResponse(c, result, nil)
	})
}
