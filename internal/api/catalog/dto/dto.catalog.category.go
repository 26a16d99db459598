package catalogdto

// CategoryInput là dữ liệu đầu vào cho tạo mới và thay thế toàn bộ danh mục.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}
