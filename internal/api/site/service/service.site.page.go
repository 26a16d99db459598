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

// PageService xử lý các trang nội dung tĩnh định danh bằng slug
type PageService struct {
	*basesvc.BaseServiceMongoImpl[sitemodels.Page]
}

// NewPageService tạo mới PageService từ collection trong registry
func NewPageService() (*PageService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pages)
	if !exist {
		return nil, fmt.Errorf("failed to get pages collection: %v", common.ErrNotFound)
	}
	return &PageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[sitemodels.Page](col),
	}, nil
}

// Get trả về trang theo slug, hoặc nội dung dựng sẵn khi chưa có document.
// Slug không quen thuộc trả về placeholder rỗng, không phải lỗi 404.
func (s *PageService) Get(ctx context.Context, slug string) (sitemodels.Page, error) {
	page, err := s.FindOne(ctx, bson.M{"slug": slug}, nil)
	if errors.Is(err, common.ErrNotFound) {
		return sitemodels.FallbackPage(slug), nil
	}
	return page, err
}

// Update cập nhật một phần trang theo slug. Nếu trang chưa tồn tại,
// tạo mới từ input với các trường thiếu là chuỗi rỗng; trang mới
// không thừa hưởng nội dung dựng sẵn.
func (s *PageService) Update(ctx context.Context, slug string, input *sitedto.PageUpdateInput) (sitemodels.Page, error) {
	var zero sitemodels.Page

	existing, err := s.FindOne(ctx, bson.M{"slug": slug}, nil)
	if errors.Is(err, common.ErrNotFound) {
		page := sitemodels.Page{Slug: slug}
		if input.Title != nil {
			page.Title = *input.Title
		}
		if input.Content != nil {
			page.Content = *input.Content
		}
		return s.InsertOne(ctx, page)
	}
	if err != nil {
		return zero, err
	}

	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if len(set) == 0 {
		return existing, nil
	}
	return s.UpdateOne(ctx, bson.M{"slug": slug}, &basesvc.UpdateData{Set: set})
}
