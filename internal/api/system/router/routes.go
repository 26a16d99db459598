// Package systemrouter đăng ký các route hệ thống.
package systemrouter

import (
	"fmt"

	basehdl "shindora_cms/internal/api/base/handler"
	apirouter "shindora_cms/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký route liveness và health check lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	handler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("create system handler: %w", err)
	}

	api.Get("/", handler.HandleRoot)
	api.Get("/health", handler.HandleHealth)

	return nil
}
