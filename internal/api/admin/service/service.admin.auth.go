// Package adminsvc cung cấp xác thực quản trị dựa trên shared secret.
// Token quản trị là SHA-256 hex của mật khẩu admin, client gửi kèm
// header Authorization dạng "Bearer <token>" cho các API ghi dữ liệu.
package adminsvc

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"shindora_cms/internal/common"
	"shindora_cms/internal/global"
)

// AuthService kiểm tra mật khẩu và token quản trị
type AuthService struct {
	secret string // Mật khẩu admin dùng chung
	token  string // SHA-256 hex của secret, tính sẵn khi khởi tạo
}

// NewAuthService tạo auth service từ cấu hình server toàn cục
func NewAuthService() *AuthService {
	secret := ""
	if global.MongoDB_ServerConfig != nil {
		secret = global.MongoDB_ServerConfig.AdminPassword
	}
	return NewAuthServiceWithSecret(secret)
}

// NewAuthServiceWithSecret tạo auth service với secret chỉ định
func NewAuthServiceWithSecret(secret string) *AuthService {
	return &AuthService{
		secret: secret,
		token:  computeToken(secret),
	}
}

// computeToken trả về SHA-256 hex của secret
func computeToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Token trả về token quản trị hợp lệ hiện tại
func (s *AuthService) Token() string {
	return s.token
}

// VerifyToken kiểm tra token quản trị.
// So sánh constant-time để tránh timing attack.
func (s *AuthService) VerifyToken(token string) bool {
	if s.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}

// Login kiểm tra mật khẩu admin và trả về token quản trị.
// Mật khẩu sai trả về common.ErrInvalidCredentials.
func (s *AuthService) Login(password string) (string, error) {
	if s.secret == "" {
		return "", common.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		return "", common.ErrInvalidCredentials
	}
	return s.token, nil
}
