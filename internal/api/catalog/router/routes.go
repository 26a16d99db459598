// Package catalogrouter đăng ký các route videos và categories.
package catalogrouter

import (
	"fmt"

	cataloghdl "shindora_cms/internal/api/catalog/handler"
	"shindora_cms/internal/api/middleware"
	apirouter "shindora_cms/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký các route của catalog lên group /api.
// Route đọc là public, route ghi yêu cầu token admin.
func Register(api fiber.Router, r *apirouter.Router) error {
	videoHandler, err := cataloghdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("create video handler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}

	// Videos
	api.Get("/videos", videoHandler.HandleList)
	api.Get("/videos/:id", videoHandler.HandleGet)
	api.Post("/videos", middleware.AdminRequired(videoHandler.HandleCreate))
	api.Put("/videos/:id", middleware.AdminRequired(videoHandler.HandleUpdate))
	api.Delete("/videos/:id", middleware.AdminRequired(videoHandler.HandleDelete))

	// Tìm kiếm và thịnh hành
	api.Get("/search", videoHandler.HandleSearch)
	api.Get("/trending", videoHandler.HandleTrending)

	// Categories
	api.Get("/categories", categoryHandler.HandleList)
	api.Post("/categories", middleware.AdminRequired(categoryHandler.HandleCreate))
	api.Put("/categories/:id", middleware.AdminRequired(categoryHandler.HandleUpdate))
	api.Delete("/categories/:id", middleware.AdminRequired(categoryHandler.HandleDelete))

	return nil
}
