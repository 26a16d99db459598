package catalogmodels

// Category đại diện cho một danh mục video.
type Category struct {
	Id   string `json:"id" bson:"id" index:"unique"` // UUID của danh mục
	Name string `json:"name" bson:"name"`            // Tên hiển thị
	Slug string `json:"slug" bson:"slug"`            // Slug dùng để lọc video
}
