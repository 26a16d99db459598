package catalogmodels

// Video đại diện cho một video trong danh mục nội dung.
// Định danh public là trường id (UUID dạng chuỗi), _id của MongoDB không được expose ra ngoài.
type Video struct {
	Id          string  `json:"id" bson:"id" index:"unique"`                        // UUID của video
	Title       string  `json:"title" bson:"title"`                                 // Tiêu đề
	Description string  `json:"description" bson:"description"`                     // Mô tả
	EmbedUrl    string  `json:"embedUrl" bson:"embedUrl"`                           // URL nhúng player
	Thumbnail   string  `json:"thumbnail" bson:"thumbnail"`                         // URL ảnh thumbnail
	Category    string  `json:"category" bson:"category" index:"single"`            // Slug danh mục
	Views       int64   `json:"views" bson:"views" index:"single,order:-1"`         // Số lượt xem
	Episode     *string `json:"episode" bson:"episode,omitempty"`                   // Số tập (tùy chọn)
	CreatedAt   string  `json:"createdAt" bson:"createdAt" index:"single,order:-1"` // Thời gian tạo (RFC3339)
}
