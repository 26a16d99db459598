package global

import (
	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo validator singleton dùng chung cho toàn bộ DTO.
// Chỉ kiểm tra sự có mặt và kiểu của dữ liệu (required, url...),
// không giới hạn nội dung các trường văn bản.
func InitValidator() {
	Validate = validator.New()
}
