package catalogdto

// VideoCreateInput là dữ liệu đầu vào để tạo video mới.
type VideoCreateInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	EmbedUrl    string  `json:"embedUrl" validate:"required,url"`
	Thumbnail   string  `json:"thumbnail" validate:"required,url"`
	Category    string  `json:"category" validate:"required"`
	Episode     *string `json:"episode" validate:"omitempty"`
}

// VideoUpdateInput là dữ liệu cập nhật một phần: chỉ các trường khác nil mới được ghi.
type VideoUpdateInput struct {
	Title       *string `json:"title" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	EmbedUrl    *string `json:"embedUrl" validate:"omitempty,url"`
	Thumbnail   *string `json:"thumbnail" validate:"omitempty,url"`
	Category    *string `json:"category" validate:"omitempty"`
	Episode     *string `json:"episode" validate:"omitempty"`
}
