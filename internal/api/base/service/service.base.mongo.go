// Package basesvc cung cấp các service cơ bản cho việc tương tác với MongoDB.
// BaseServiceMongoImpl bọc một *mongo.Collection và chuẩn hóa
// các thao tác CRUD, chuyển đổi lỗi driver sang lỗi hệ thống.
package basesvc

import (
	"context"
	"errors"
	"time"

	"shindora_cms/internal/common"
	"shindora_cms/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateData chứa các toán tử update của MongoDB.
// Truyền struct hoặc bson.M vào từng trường, bson codec sẽ sinh document update tương ứng.
type UpdateData struct {
	Set         interface{} `bson:"$set,omitempty"`         // Cập nhật giá trị field
	SetOnInsert interface{} `bson:"$setOnInsert,omitempty"` // Chỉ set khi upsert tạo mới document
	Unset       interface{} `bson:"$unset,omitempty"`       // Xóa field khỏi document
	Inc         interface{} `bson:"$inc,omitempty"`         // Tăng giá trị số
}

// BaseServiceMongoImpl cung cấp các thao tác CRUD chuẩn trên một collection,
// các domain service embed struct này và bổ sung nghiệp vụ riêng.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection mà service thao tác
}

// NewBaseServiceMongo tạo base service trên một collection
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection đang được service sử dụng
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// normalizeFilter đảm bảo filter không nil (nil filter → match tất cả)
func normalizeFilter(filter interface{}) interface{} {
	if filter == nil {
		return bson.D{}
	}
	if m, ok := filter.(map[string]interface{}); ok && len(m) == 0 {
		return bson.D{}
	}
	return filter
}

// ==========================================
// CREATE
// ==========================================

// InsertOne chèn một document mới vào collection.
// updatedAt được tự động gán thời điểm hiện tại (UnixMilli).
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	doc["updatedAt"] = time.Now().UnixMilli()

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Đọc lại document vừa chèn để trả về bản ghi đầy đủ
	var inserted T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&inserted); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return inserted, nil
}

// ==========================================
// READ
// ==========================================

// FindOne tìm một document theo filter
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	err := s.collection.FindOne(ctx, normalizeFilter(filter), opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneByID tìm một document theo trường id (UUID dạng chuỗi)
func (s *BaseServiceMongoImpl[T]) FindOneByID(ctx context.Context, id string) (T, error) {
	return s.FindOne(ctx, bson.M{"id": id}, nil)
}

// Find tìm nhiều documents theo filter.
// Luôn trả về slice khác nil để JSON encode thành mảng rỗng thay vì null.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, normalizeFilter(filter), opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// ==========================================
// UPDATE
// ==========================================

// buildUpdateDocument chuyển UpdateData thành document update,
// tự động thêm updatedAt vào $set.
func buildUpdateDocument(update *UpdateData) (bson.M, error) {
	doc := bson.M{}

	if update.Set != nil {
		setMap, err := utility.ToMap(update.Set)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
		}
		setMap["updatedAt"] = time.Now().UnixMilli()
		doc["$set"] = setMap
	} else {
		doc["$set"] = bson.M{"updatedAt": time.Now().UnixMilli()}
	}

	if update.SetOnInsert != nil {
		doc["$setOnInsert"] = update.SetOnInsert
	}
	if update.Unset != nil {
		doc["$unset"] = update.Unset
	}
	if update.Inc != nil {
		doc["$inc"] = update.Inc
	}

	return doc, nil
}

// UpdateOne cập nhật một document theo filter và trả về bản ghi sau cập nhật
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update *UpdateData) (T, error) {
	return s.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
}

// FindOneAndUpdate cập nhật và trả về document trong một thao tác atomic.
// Mặc định trả về bản ghi sau cập nhật nếu opts không chỉ định khác.
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update *UpdateData, opts *options.FindOneAndUpdateOptions) (T, error) {
	var result T

	doc, err := buildUpdateDocument(update)
	if err != nil {
		return result, err
	}

	if opts == nil {
		opts = options.FindOneAndUpdate().SetReturnDocument(options.After)
	}

	err = s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), doc, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// ReplaceOne thay thế toàn bộ document khớp filter bằng data.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) ReplaceOne(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	// Không ghi đè _id của document cũ
	delete(doc, "_id")
	doc["updatedAt"] = time.Now().UnixMilli()

	result, err := s.collection.ReplaceOne(ctx, normalizeFilter(filter), doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return zero, common.ErrNotFound
	}

	return s.FindOne(ctx, filter, nil)
}

// Upsert cập nhật document khớp filter, tạo mới nếu chưa tồn tại
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	// Không ghi đè _id khi update document đã tồn tại
	delete(doc, "_id")
	doc["updatedAt"] = time.Now().UnixMilli()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result T
	err = s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), bson.M{"$set": doc}, opts).Decode(&result)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// ==========================================
// DELETE
// ==========================================

// DeleteOne xóa một document theo filter.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, normalizeFilter(filter))
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
