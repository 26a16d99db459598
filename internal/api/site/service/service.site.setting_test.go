// Package sitesvc - Test cập nhật cấu hình singleton qua upsert.
package sitesvc

import (
	"context"
	"testing"

	basesvc "shindora_cms/internal/api/base/service"
	sitedto "shindora_cms/internal/api/site/dto"
	sitemodels "shindora_cms/internal/api/site/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockSettingService(mt *mtest.T) *SettingService {
	return &SettingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[sitemodels.Setting](mt.Coll),
	}
}

func strPtr(s string) *string { return &s }

func TestApplySettingInput_OnlySetFields(t *testing.T) {
	setting := sitemodels.DefaultSetting()

	applySettingInput(&setting, &sitedto.SettingUpdateInput{
		PrimaryColor: strPtr("#FF0000"),
	})

	// Chỉ trường được gửi lên thay đổi, các trường còn lại giữ nguyên
	assert.Equal(t, "#FF0000", setting.PrimaryColor)
	assert.Equal(t, "ShinDoraNesub", setting.SiteName)
	assert.Equal(t, "#0F0F0F", setting.DarkBg)
}

func TestSettingService_Update_UpsertsWhenEmpty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().
		ClientType(mtest.Mock).
		DatabaseName("shindora_cms").
		CollectionName("settings"))

	mt.Run("chua co document thi tao tu mac dinh", func(mt *mtest.T) {
		svc := newMockSettingService(mt)

		// Collection rỗng: find trả về cursor không có document
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "shindora_cms.settings", mtest.FirstBatch),
			mtest.CreateSuccessResponse(
				bson.E{Key: "value", Value: bson.D{
					{Key: "siteName", Value: "ShinDoraNesub"},
					{Key: "primaryColor", Value: "#FF0000"},
					{Key: "darkBg", Value: "#0F0F0F"},
				}},
				bson.E{Key: "lastErrorObject", Value: bson.D{
					{Key: "n", Value: 1},
					{Key: "updatedExisting", Value: false},
				}},
			),
		)

		setting, err := svc.Update(context.Background(), &sitedto.SettingUpdateInput{
			PrimaryColor: strPtr("#FF0000"),
		})
		assert.NoError(mt, err)
		assert.Equal(mt, "#FF0000", setting.PrimaryColor)

		evt := mt.GetStartedEvent()
		if assert.NotNil(mt, evt) {
			assert.Equal(mt, "find", evt.CommandName)
		}

		evt = mt.GetStartedEvent()
		if assert.NotNil(mt, evt) {
			// PUT là một upsert: tạo mới khi chưa có, không cần insert riêng
			assert.Equal(mt, "findAndModify", evt.CommandName)

			upsert, ok := evt.Command.Lookup("upsert").BooleanOK()
			assert.True(mt, ok)
			assert.True(mt, upsert)

			set := evt.Command.Lookup("update").Document().Lookup("$set").Document()
			assert.Equal(mt, "#FF0000", set.Lookup("primaryColor").StringValue())
			// Trường không gửi lên được điền từ giá trị mặc định
			assert.Equal(mt, "ShinDoraNesub", set.Lookup("siteName").StringValue())
		}
	})

	mt.Run("da co document thi patch len ban ghi hien tai", func(mt *mtest.T) {
		svc := newMockSettingService(mt)

		existing := bson.D{
			{Key: "siteName", Value: "ShinDoraNesub"},
			{Key: "logo", Value: "data:image/png;base64,abc"},
			{Key: "primaryColor", Value: "#3B82F6"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "shindora_cms.settings", mtest.FirstBatch, existing),
			mtest.CreateSuccessResponse(
				bson.E{Key: "value", Value: bson.D{
					{Key: "siteName", Value: "ShinDoraNesub"},
					{Key: "logo", Value: "data:image/png;base64,abc"},
					{Key: "primaryColor", Value: "#FF0000"},
				}},
				bson.E{Key: "lastErrorObject", Value: bson.D{
					{Key: "n", Value: 1},
					{Key: "updatedExisting", Value: true},
				}},
			),
		)

		setting, err := svc.Update(context.Background(), &sitedto.SettingUpdateInput{
			PrimaryColor: strPtr("#FF0000"),
		})
		assert.NoError(mt, err)
		assert.Equal(mt, "#FF0000", setting.PrimaryColor)
		assert.Equal(mt, "data:image/png;base64,abc", setting.Logo)

		assert.Equal(mt, "find", mt.GetStartedEvent().CommandName)

		evt := mt.GetStartedEvent()
		if assert.NotNil(mt, evt) {
			set := evt.Command.Lookup("update").Document().Lookup("$set").Document()
			// Logo không nằm trong input nên giữ nguyên từ bản ghi hiện tại
			assert.Equal(mt, "data:image/png;base64,abc", set.Lookup("logo").StringValue())
		}
	})
}
