// Package catalogsvc chứa business logic cho videos và categories.
package catalogsvc

import (
	"context"
	"fmt"
	"regexp"
	"time"

	basesvc "shindora_cms/internal/api/base/service"
	catalogdto "shindora_cms/internal/api/catalog/dto"
	catalogmodels "shindora_cms/internal/api/catalog/models"
	"shindora_cms/internal/common"
	"shindora_cms/internal/global"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultVideoListLimit là số video tối đa trả về khi client không truyền limit
	DefaultVideoListLimit int64 = 50
	// DefaultSearchLimit là số kết quả tìm kiếm khi client không truyền limit
	DefaultSearchLimit int64 = 50
	// DefaultTrendingLimit là số video thịnh hành khi client không truyền limit
	DefaultTrendingLimit int64 = 20
)

// VideoService xử lý các thao tác trên collection videos
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Video]
}

// NewVideoService tạo mới VideoService từ collection trong registry
func NewVideoService() (*VideoService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Video](col),
	}, nil
}

// List trả về danh sách video mới nhất, lọc theo category nếu có.
// limit <= 0 dùng giá trị mặc định.
func (s *VideoService) List(ctx context.Context, category string, limit int64) ([]catalogmodels.Video, error) {
	if limit <= 0 {
		limit = DefaultVideoListLimit
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, filter, opts)
}

// GetAndIncrementViews tăng lượt xem của video và trả về bản ghi sau khi tăng.
// Thao tác là atomic: hai request đồng thời không bao giờ mất lượt đếm.
func (s *VideoService) GetAndIncrementViews(ctx context.Context, id string) (catalogmodels.Video, error) {
	return s.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		&basesvc.UpdateData{Inc: bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))
}

// Create tạo video mới với UUID và thời gian tạo do server sinh ra
func (s *VideoService) Create(ctx context.Context, input *catalogdto.VideoCreateInput) (catalogmodels.Video, error) {
	video := catalogmodels.Video{
		Id:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		EmbedUrl:    input.EmbedUrl,
		Thumbnail:   input.Thumbnail,
		Category:    input.Category,
		Views:       0,
		Episode:     input.Episode,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	return s.InsertOne(ctx, video)
}

// Patch cập nhật các trường khác nil của input lên video.
// Input rỗng không ghi gì, chỉ trả về bản ghi hiện tại.
func (s *VideoService) Patch(ctx context.Context, id string, input *catalogdto.VideoUpdateInput) (catalogmodels.Video, error) {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.EmbedUrl != nil {
		set["embedUrl"] = *input.EmbedUrl
	}
	if input.Thumbnail != nil {
		set["thumbnail"] = *input.Thumbnail
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Episode != nil {
		set["episode"] = *input.Episode
	}

	if len(set) == 0 {
		return s.FindOneByID(ctx, id)
	}

	return s.UpdateOne(ctx, bson.M{"id": id}, &basesvc.UpdateData{Set: set})
}

// Delete xóa video theo id
func (s *VideoService) Delete(ctx context.Context, id string) error {
	return s.DeleteOne(ctx, bson.M{"id": id})
}

// SearchFilter xây dựng filter tìm kiếm không phân biệt hoa thường
// trên title, description và category. Query được escape để ký tự
// regex trong đầu vào người dùng không đổi ngữ nghĩa tìm kiếm.
func SearchFilter(query string) bson.M {
	pattern := regexp.QuoteMeta(query)
	regex := bson.M{"$regex": pattern, "$options": "i"}
	return bson.M{
		"$or": []bson.M{
			{"title": regex},
			{"description": regex},
			{"category": regex},
		},
	}
}

// searchFindOptions giới hạn số kết quả tìm kiếm, không áp đặt thứ tự:
// kết quả trả về theo thứ tự lưu trữ, không ranking.
func searchFindOptions(limit int64) *options.FindOptions {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return options.Find().SetLimit(limit)
}

// Search tìm video theo từ khóa
func (s *VideoService) Search(ctx context.Context, query string, limit int64) ([]catalogmodels.Video, error) {
	return s.Find(ctx, SearchFilter(query), searchFindOptions(limit))
}

// Trending trả về các video có lượt xem cao nhất
func (s *VideoService) Trending(ctx context.Context, limit int64) ([]catalogmodels.Video, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "views", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.M{}, opts)
}
