// Package catalogsvc - Test filter tìm kiếm video.
package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilter_MatchesThreeFields(t *testing.T) {
	filter := SearchFilter("doraemon")

	or, ok := filter["$or"].([]bson.M)
	assert.True(t, ok, "filter phải có mảng $or")
	assert.Len(t, or, 3)

	fields := []string{}
	for _, cond := range or {
		for field, v := range cond {
			fields = append(fields, field)
			regex, ok := v.(bson.M)
			assert.True(t, ok)
			assert.Equal(t, "doraemon", regex["$regex"])
			// Tìm kiếm không phân biệt hoa thường
			assert.Equal(t, "i", regex["$options"])
		}
	}
	assert.ElementsMatch(t, []string{"title", "description", "category"}, fields)
}

func TestSearchFilter_EscapesRegexMetacharacters(t *testing.T) {
	filter := SearchFilter("shin.*(chan)")

	or := filter["$or"].([]bson.M)
	regex := or[0]["title"].(bson.M)

	// Ký tự đặc biệt trong từ khóa phải được escape để match theo nghĩa đen
	assert.Equal(t, `shin\.\*\(chan\)`, regex["$regex"])
}

func TestSearchFindOptions_NoRanking(t *testing.T) {
	opts := searchFindOptions(0)

	// Tìm kiếm không sắp xếp kết quả, giữ nguyên thứ tự lưu trữ
	assert.Nil(t, opts.Sort)
	if assert.NotNil(t, opts.Limit) {
		assert.Equal(t, DefaultSearchLimit, *opts.Limit)
	}

	opts = searchFindOptions(7)
	assert.Equal(t, int64(7), *opts.Limit)
}
