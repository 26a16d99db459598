package catalogsvc

import (
	"context"
	"fmt"

	basesvc "shindora_cms/internal/api/base/service"
	catalogdto "shindora_cms/internal/api/catalog/dto"
	catalogmodels "shindora_cms/internal/api/catalog/models"
	"shindora_cms/internal/common"
	"shindora_cms/internal/global"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryListLimit là số danh mục tối đa trả về trong một lần
const CategoryListLimit int64 = 100

// CategoryService xử lý các thao tác trên collection categories
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo mới CategoryService từ collection trong registry
func NewCategoryService() (*CategoryService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](col),
	}, nil
}

// List trả về toàn bộ danh mục
func (s *CategoryService) List(ctx context.Context) ([]catalogmodels.Category, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetLimit(CategoryListLimit))
}

// Create tạo danh mục mới với UUID do server sinh ra
func (s *CategoryService) Create(ctx context.Context, input *catalogdto.CategoryInput) (catalogmodels.Category, error) {
	category := catalogmodels.Category{
		Id:   uuid.NewString(),
		Name: input.Name,
		Slug: input.Slug,
	}
	return s.InsertOne(ctx, category)
}

// Replace thay toàn bộ nội dung danh mục theo id, giữ nguyên id cũ
func (s *CategoryService) Replace(ctx context.Context, id string, input *catalogdto.CategoryInput) (catalogmodels.Category, error) {
	return s.ReplaceOne(ctx, bson.M{"id": id}, catalogmodels.Category{
		Id:   id,
		Name: input.Name,
		Slug: input.Slug,
	})
}

// Delete xóa danh mục theo id
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.DeleteOne(ctx, bson.M{"id": id})
}
