// Package adminhdl chứa HTTP handlers cho xác thực quản trị.
package adminhdl

import (
	admindto "shindora_cms/internal/api/admin/dto"
	basehdl "shindora_cms/internal/api/base/handler"
	"shindora_cms/internal/api/middleware"
	"shindora_cms/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler xử lý các route /api/admin
type AdminHandler struct {
	basehdl.BaseHandler[interface{}, admindto.AdminLoginInput, interface{}]
}

// NewAdminHandler tạo mới AdminHandler
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// HandleLogin kiểm tra mật khẩu admin và trả về token quản trị.
// Token là hằng số dẫn xuất từ shared secret, không phải session.
func (h *AdminHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(admindto.AdminLoginInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		token, err := middleware.GetAuthManager().Auth.Login(input.Password)
		if err != nil {
			logger.LogAuth("login_failed", c, nil)
			return h.HandleResponse(c, nil, err)
		}

		logger.LogAuth("login", c, nil)
		return h.HandleResponse(c, fiber.Map{"token": token}, nil)
	})
}
