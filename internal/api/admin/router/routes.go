// Package adminrouter đăng ký các route xác thực quản trị.
package adminrouter

import (
	adminhdl "shindora_cms/internal/api/admin/handler"
	apirouter "shindora_cms/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký route đăng nhập quản trị lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	handler := adminhdl.NewAdminHandler()
	api.Post("/admin/login", handler.HandleLogin)
	return nil
}
