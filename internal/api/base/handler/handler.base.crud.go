package basehdl

// Package basehdl - base handlers.
// Package này cung cấp BaseHandler dùng chung và các tiện ích để xử lý request/response.

import (
	"bytes"
	"encoding/json"
	"fmt"

	"shindora_cms/internal/common"
	"shindora_cms/internal/global"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// BaseHandler cung cấp các tiện ích chung cho domain handler:
// parse + validate request body, chuẩn hóa response và bọc panic recovery.
// Type parameters:
//   - T: Model của domain
//   - CreateInput: DTO tạo mới
//   - UpdateInput: DTO cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct{}

// NewBaseHandler tạo base handler cho một domain
func NewBaseHandler[T any, CreateInput any, UpdateInput any]() *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{}
}

// ParseRequestBody parse request body JSON vào input struct.
// Dùng json.Decoder với UseNumber để giữ nguyên độ chính xác của số lớn.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Request body is empty",
			common.StatusBadRequest,
			nil,
		)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Invalid JSON body: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	return nil
}

// ValidateInput validate input struct theo các struct tag `validate`
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		message := common.MsgValidationError
		if ok := AsValidationErrors(err, &validationErrors); ok && len(validationErrors) > 0 {
			fe := validationErrors[0]
			message = fmt.Sprintf("Invalid value for field '%s' (rule '%s')", fe.Field(), fe.Tag())
		}
		return common.NewError(
			common.ErrCodeValidationInput,
			message,
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ParseAndValidateBody parse body rồi validate input trong một bước
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseAndValidateBody(c fiber.Ctx, input interface{}) error {
	if err := h.ParseRequestBody(c, input); err != nil {
		return err
	}
	return h.ValidateInput(input)
}

// AsValidationErrors unwrap err thành validator.ValidationErrors nếu có thể
func AsValidationErrors(err error, target *validator.ValidationErrors) bool {
	if ve, ok := err.(validator.ValidationErrors); ok {
		*target = ve
		return true
	}
	return false
}
