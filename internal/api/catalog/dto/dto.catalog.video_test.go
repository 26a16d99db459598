// Package catalogdto - Test ngữ nghĩa sparse patch của DTO cập nhật video.
package catalogdto

import (
	"encoding/json"
	"testing"

	"shindora_cms/internal/global"

	"github.com/stretchr/testify/assert"
)

func TestVideoCreateInput_DoesNotRestrictTextContent(t *testing.T) {
	global.InitValidator()

	// Tiêu đề và mô tả là văn bản tự do, markup hay tên thuộc tính HTML đều hợp lệ
	input := VideoCreateInput{
		Title:       "Tutorial: dung onclick= trong HTML",
		Description: "<p>Tập đặc biệt</p>",
		EmbedUrl:    "https://example.com/embed/1",
		Thumbnail:   "https://example.com/thumb.jpg",
		Category:    "doraemon",
	}
	assert.NoError(t, global.Validate.Struct(input))
}

func TestVideoUpdateInput_AbsentFieldsStayNil(t *testing.T) {
	var input VideoUpdateInput
	err := json.Unmarshal([]byte(`{"title": "Tập mới"}`), &input)
	assert.NoError(t, err)

	// Chỉ trường có mặt trong payload mới khác nil
	if assert.NotNil(t, input.Title) {
		assert.Equal(t, "Tập mới", *input.Title)
	}
	assert.Nil(t, input.Description)
	assert.Nil(t, input.EmbedUrl)
	assert.Nil(t, input.Thumbnail)
	assert.Nil(t, input.Category)
	assert.Nil(t, input.Episode)
}

func TestVideoUpdateInput_EmptyStringIsSettable(t *testing.T) {
	var input VideoUpdateInput
	err := json.Unmarshal([]byte(`{"episode": ""}`), &input)
	assert.NoError(t, err)

	// Chuỗi rỗng khác với vắng mặt: vẫn là một giá trị được ghi
	if assert.NotNil(t, input.Episode) {
		assert.Equal(t, "", *input.Episode)
	}
}

func TestVideoUpdateInput_NullMeansUntouched(t *testing.T) {
	var input VideoUpdateInput
	err := json.Unmarshal([]byte(`{"title": null, "description": "Mô tả"}`), &input)
	assert.NoError(t, err)

	// null trong payload giữ nguyên trường, không ghi đè
	assert.Nil(t, input.Title)
	assert.NotNil(t, input.Description)
}
