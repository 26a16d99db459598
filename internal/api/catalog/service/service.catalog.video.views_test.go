// Package catalogsvc - Test lượt xem: đọc và tăng là một lệnh findAndModify duy nhất.
package catalogsvc

import (
	"context"
	"testing"

	basesvc "shindora_cms/internal/api/base/service"
	catalogmodels "shindora_cms/internal/api/catalog/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockVideoService(mt *mtest.T) *VideoService {
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Video](mt.Coll),
	}
}

// videoResponse dựng response findAndModify của server với lượt xem sau khi tăng
func videoResponse(id string, views int64) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "value", Value: bson.D{
			{Key: "id", Value: id},
			{Key: "title", Value: "Tập 1"},
			{Key: "views", Value: views},
		}},
		bson.E{Key: "lastErrorObject", Value: bson.D{
			{Key: "n", Value: 1},
			{Key: "updatedExisting", Value: true},
		}},
	)
}

func TestGetAndIncrementViews_SingleAtomicCommand(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().
		ClientType(mtest.Mock).
		DatabaseName("shindora_cms").
		CollectionName("videos"))

	mt.Run("tang luot xem trong mot lenh duy nhat", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		mt.AddMockResponses(videoResponse("vid-1", 6))

		video, err := svc.GetAndIncrementViews(context.Background(), "vid-1")
		assert.NoError(mt, err)
		// Giá trị trả về là lượt xem sau khi tăng
		assert.Equal(mt, int64(6), video.Views)

		evt := mt.GetStartedEvent()
		if assert.NotNil(mt, evt) {
			// Không có cặp đọc-rồi-ghi, chỉ một findAndModify với $inc
			assert.Equal(mt, "findAndModify", evt.CommandName)

			update := evt.Command.Lookup("update").Document()
			inc, ok := update.Lookup("$inc").Document().Lookup("views").AsInt64OK()
			assert.True(mt, ok)
			assert.Equal(mt, int64(1), inc)

			// new: true yêu cầu server trả về bản ghi sau cập nhật
			returnNew, ok := evt.Command.Lookup("new").BooleanOK()
			assert.True(mt, ok)
			assert.True(mt, returnNew)

			assert.Equal(mt, "vid-1", evt.Command.Lookup("query").Document().Lookup("id").StringValue())
		}
	})

	mt.Run("moi fetch tang dung mot luot", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		mt.AddMockResponses(videoResponse("vid-1", 6), videoResponse("vid-1", 7))

		first, err := svc.GetAndIncrementViews(context.Background(), "vid-1")
		assert.NoError(mt, err)
		second, err := svc.GetAndIncrementViews(context.Background(), "vid-1")
		assert.NoError(mt, err)
		assert.Equal(mt, first.Views+1, second.Views)

		// N fetch phát sinh đúng N lệnh findAndModify
		for i := 0; i < 2; i++ {
			evt := mt.GetStartedEvent()
			if assert.NotNil(mt, evt) {
				assert.Equal(mt, "findAndModify", evt.CommandName)
			}
		}
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
