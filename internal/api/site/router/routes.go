// Package siterouter đăng ký các route settings và pages.
package siterouter

import (
	"fmt"

	"shindora_cms/internal/api/middleware"
	apirouter "shindora_cms/internal/api/router"
	sitehdl "shindora_cms/internal/api/site/handler"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký các route của site lên group /api.
// Route đọc là public, route ghi yêu cầu token admin.
func Register(api fiber.Router, r *apirouter.Router) error {
	settingHandler, err := sitehdl.NewSettingHandler()
	if err != nil {
		return fmt.Errorf("create setting handler: %w", err)
	}
	pageHandler, err := sitehdl.NewPageHandler()
	if err != nil {
		return fmt.Errorf("create page handler: %w", err)
	}

	// Settings (singleton)
	api.Get("/settings", settingHandler.HandleGet)
	api.Put("/settings", middleware.AdminRequired(settingHandler.HandleUpdate))

	// Pages
	api.Get("/pages/:slug", pageHandler.HandleGet)
	api.Put("/pages/:slug", middleware.AdminRequired(pageHandler.HandleUpdate))

	return nil
}
