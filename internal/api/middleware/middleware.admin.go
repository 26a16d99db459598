package middleware

import (
	"strings"
	"sync"

	adminsvc "shindora_cms/internal/api/admin/service"
	"shindora_cms/internal/common"
	"shindora_cms/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AuthManager quản lý xác thực quản trị cho các route ghi dữ liệu
type AuthManager struct {
	Auth *adminsvc.AuthService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = &AuthManager{
			Auth: adminsvc.NewAuthService(),
		}
	})
	return authManagerInstance
}

// verifyAdmin kiểm tra header Authorization dạng "Bearer <token>",
// trong đó token là SHA-256 hex của mật khẩu admin.
func verifyAdmin(c fiber.Ctx) error {
	am := GetAuthManager()

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return common.ErrTokenMissing
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return common.ErrTokenInvalid
	}

	if !am.Auth.VerifyToken(token) {
		logger.WithRequest(c).Warn("Admin token rejected")
		return common.ErrTokenInvalid
	}

	return nil
}

// AdminAuthMiddleware xác thực admin cho cả một group route.
// Request không có token hoặc token sai trả về 401 {"detail": "Unauthorized"}.
func AdminAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := verifyAdmin(c); err != nil {
			return HandleErrorResponse(c, err)
		}
		return c.Next()
	}
}

// AdminRequired bọc một handler, chỉ gọi handler khi token admin hợp lệ.
// Dùng cho các prefix có cả route public lẫn route admin: middleware đăng ký
// qua group.Use() áp theo prefix cho mọi method nên sẽ chặn nhầm cả route public.
func AdminRequired(handler fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := verifyAdmin(c); err != nil {
			return HandleErrorResponse(c, err)
		}
		return handler(c)
	}
}
