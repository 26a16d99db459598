// Package admindto chứa các DTO cho xác thực quản trị.
package admindto

// AdminLoginInput là dữ liệu đăng nhập quản trị
type AdminLoginInput struct {
	Password string `json:"password" validate:"required"`
}
