// Package catalogsvc - Test thay thế toàn phần danh mục.
package catalogsvc

import (
	"context"
	"testing"

	basesvc "shindora_cms/internal/api/base/service"
	catalogdto "shindora_cms/internal/api/catalog/dto"
	catalogmodels "shindora_cms/internal/api/catalog/models"
	"shindora_cms/internal/common"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockCategoryService(mt *mtest.T) *CategoryService {
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](mt.Coll),
	}
}

func TestCategoryService_Replace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().
		ClientType(mtest.Mock).
		DatabaseName("shindora_cms").
		CollectionName("categories"))

	mt.Run("thay toan bo noi dung va giu nguyen id", func(mt *mtest.T) {
		svc := newMockCategoryService(mt)

		replaced := bson.D{
			{Key: "id", Value: "cat-1"},
			{Key: "name", Value: "Doraemon"},
			{Key: "slug", Value: "doraemon"},
		}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
			mtest.CreateCursorResponse(1, "shindora_cms.categories", mtest.FirstBatch, replaced),
		)

		category, err := svc.Replace(context.Background(), "cat-1", &catalogdto.CategoryInput{
			Name: "Doraemon",
			Slug: "doraemon",
		})
		assert.NoError(mt, err)
		assert.Equal(mt, "cat-1", category.Id)
		assert.Equal(mt, "doraemon", category.Slug)

		evt := mt.GetStartedEvent()
		if assert.NotNil(mt, evt) {
			// PUT danh mục là replace, không phải $set từng trường
			assert.Equal(mt, "update", evt.CommandName)

			update := evt.Command.Lookup("updates").Array().Index(0).Value().Document()
			doc := update.Lookup("u").Document()
			assert.Equal(mt, "cat-1", doc.Lookup("id").StringValue())
			assert.Equal(mt, "Doraemon", doc.Lookup("name").StringValue())
			// Document thay thế không chứa toán tử cập nhật nào
			_, err := doc.LookupErr("$set")
			assert.Error(mt, err)
		}
	})

	mt.Run("khong co danh muc nao khop thi tra ve not found", func(mt *mtest.T) {
		svc := newMockCategoryService(mt)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		_, err := svc.Replace(context.Background(), "cat-hong-ton-tai", &catalogdto.CategoryInput{
			Name: "Shin",
			Slug: "shin",
		})
		assert.ErrorIs(mt, err, common.ErrNotFound)
	})
}
