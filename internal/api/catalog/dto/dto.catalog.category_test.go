// Package catalogdto - Test DTO danh mục: required được enforce, nội dung tự do.
package catalogdto

import (
	"testing"

	"shindora_cms/internal/global"

	"github.com/stretchr/testify/assert"
)

func TestCategoryInput_AcceptsFreeFormSlug(t *testing.T) {
	global.InitValidator()

	// Slug không bị ràng buộc định dạng, chỉ cần có mặt
	assert.NoError(t, global.Validate.Struct(CategoryInput{Name: "Shin-chan", Slug: "shin_chan"}))
	assert.NoError(t, global.Validate.Struct(CategoryInput{Name: "Doraemon", Slug: "Doraemon 2026"}))
}

func TestCategoryInput_RequiredFields(t *testing.T) {
	global.InitValidator()

	assert.Error(t, global.Validate.Struct(CategoryInput{Name: "", Slug: "shin-chan"}))
	assert.Error(t, global.Validate.Struct(CategoryInput{Name: "Shin-chan", Slug: ""}))
}
