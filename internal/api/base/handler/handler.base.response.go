package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"shindora_cms/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Helper này đảm bảo mọi JSON response đều khai báo charset để client decode UTF-8 đúng cách.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse trả về lỗi theo format {"detail": message}.
// Đây là format lỗi thống nhất của toàn bộ API.
func ErrorResponse(c fiber.Ctx, statusCode int, message string) error {
	return JSONResponse(c, statusCode, fiber.Map{
		"detail": message,
	})
}

// HandleError map error sang HTTP response dạng {"detail": message}.
// *common.Error giữ nguyên status code, lỗi khác trả về 500.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return ErrorResponse(c, customErr.StatusCode, customErr.Message)
	}
	return ErrorResponse(c, common.StatusInternalServerError, err.Error())
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			_ = h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse chuẩn hóa response trả về cho client.
// Thành công trả thẳng data dưới dạng JSON với status 200,
// lỗi trả về {"detail": message} với status code tương ứng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, data)
}
