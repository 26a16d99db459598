// Package global - Test validator singleton: chỉ kiểm tra presence và kiểu.
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type linkInput struct {
	Name string `validate:"required"`
	URL  string `validate:"omitempty,url"`
}

func TestInitValidator(t *testing.T) {
	InitValidator()
	assert.NotNil(t, Validate)

	assert.NoError(t, Validate.Struct(linkInput{Name: "Doraemon"}))
	assert.NoError(t, Validate.Struct(linkInput{Name: "Doraemon", URL: "https://example.com/embed/1"}))

	assert.Error(t, Validate.Struct(linkInput{Name: ""}))
	assert.Error(t, Validate.Struct(linkInput{Name: "Doraemon", URL: "khong phai url"}))
}

func TestValidator_DoesNotRestrictTextContent(t *testing.T) {
	InitValidator()

	// Nội dung văn bản tự do không bị từ chối, kể cả khi chứa markup
	assert.NoError(t, Validate.Struct(linkInput{Name: `<b>Tập 1</b> & "đặc biệt"`}))
	assert.NoError(t, Validate.Struct(linkInput{Name: "Tutorial: dung onclick= trong HTML"}))
}
