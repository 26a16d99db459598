// Package translaterouter đăng ký route dịch thuật.
package translaterouter

import (
	apirouter "shindora_cms/internal/api/router"
	translatehdl "shindora_cms/internal/api/translate/handler"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký route translate lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	handler := translatehdl.NewTranslateHandler()
	api.Post("/translate", handler.HandleTranslate)
	return nil
}
