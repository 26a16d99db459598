// Package adminsvc - Test xác thực admin: token dẫn xuất từ secret, login và verify.
package adminsvc

import (
	"errors"
	"testing"

	"shindora_cms/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestToken_DeterministicFromSecret(t *testing.T) {
	s := NewAuthServiceWithSecret("Emilia9@#$")

	// Token là SHA-256 hex của secret, không đổi giữa các lần khởi tạo
	assert.Equal(t, "cd9b75258cf596ddcc1e5e004d360f9651cfc5c5c146d470c30b5bf561c1ae31", s.Token())
	assert.Equal(t, NewAuthServiceWithSecret("Emilia9@#$").Token(), s.Token())

	// Secret khác sinh token khác
	assert.NotEqual(t, NewAuthServiceWithSecret("other").Token(), s.Token())
}

func TestVerifyToken(t *testing.T) {
	s := NewAuthServiceWithSecret("Emilia9@#$")

	assert.True(t, s.VerifyToken(s.Token()))
	assert.False(t, s.VerifyToken(""))
	assert.False(t, s.VerifyToken("sai-token"))
	// Gửi thẳng mật khẩu thay vì token phải bị từ chối
	assert.False(t, s.VerifyToken("Emilia9@#$"))
}

func TestVerifyToken_EmptySecretAlwaysFails(t *testing.T) {
	s := NewAuthServiceWithSecret("")

	// Secret rỗng không bao giờ xác thực được, kể cả với token của chính nó
	assert.False(t, s.VerifyToken(s.token))
}

func TestLogin(t *testing.T) {
	s := NewAuthServiceWithSecret("Emilia9@#$")

	token, err := s.Login("Emilia9@#$")
	assert.NoError(t, err)
	assert.Equal(t, s.Token(), token)

	_, err = s.Login("sai-mat-khau")
	assert.True(t, errors.Is(err, common.ErrInvalidCredentials))

	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Invalid password", customErr.Message)
	assert.Equal(t, common.StatusUnauthorized, customErr.StatusCode)
}
