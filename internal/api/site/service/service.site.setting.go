// Package sitesvc chứa business logic cho settings và pages.
package sitesvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "shindora_cms/internal/api/base/service"
	sitedto "shindora_cms/internal/api/site/dto"
	sitemodels "shindora_cms/internal/api/site/models"
	"shindora_cms/internal/common"
	"shindora_cms/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// SettingService xử lý document cấu hình singleton của site
type SettingService struct {
	*basesvc.BaseServiceMongoImpl[sitemodels.Setting]
}

// NewSettingService tạo mới SettingService từ collection trong registry
func NewSettingService() (*SettingService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}
	return &SettingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[sitemodels.Setting](col),
	}, nil
}

// Get trả về cấu hình đang lưu, hoặc cấu hình mặc định nếu chưa có.
// Giá trị mặc định chỉ được tổng hợp trong bộ nhớ, không ghi xuống database.
func (s *SettingService) Get(ctx context.Context) (sitemodels.Setting, error) {
	setting, err := s.FindOne(ctx, bson.M{}, nil)
	if errors.Is(err, common.ErrNotFound) {
		return sitemodels.DefaultSetting(), nil
	}
	return setting, err
}

// applySettingInput ghi các trường khác nil của input lên setting
func applySettingInput(setting *sitemodels.Setting, input *sitedto.SettingUpdateInput) {
	if input.SiteName != nil {
		setting.SiteName = *input.SiteName
	}
	if input.Logo != nil {
		setting.Logo = *input.Logo
	}
	if input.PrimaryColor != nil {
		setting.PrimaryColor = *input.PrimaryColor
	}
	if input.DarkBg != nil {
		setting.DarkBg = *input.DarkBg
	}
	if input.LightBg != nil {
		setting.LightBg = *input.LightBg
	}
	if input.TextColor != nil {
		setting.TextColor = *input.TextColor
	}
}

// Update cập nhật một phần cấu hình qua upsert: nếu chưa có document nào,
// tạo mới từ giá trị mặc định với các trường input đè lên.
func (s *SettingService) Update(ctx context.Context, input *sitedto.SettingUpdateInput) (sitemodels.Setting, error) {
	var zero sitemodels.Setting

	existing, err := s.FindOne(ctx, bson.M{}, nil)
	if errors.Is(err, common.ErrNotFound) {
		existing = sitemodels.DefaultSetting()
	} else if err != nil {
		return zero, err
	}

	patched := existing
	applySettingInput(&patched, input)
	return s.Upsert(ctx, bson.M{}, patched)
}
