package sitemodels

// Setting là document cấu hình hiển thị của site, cả collection chỉ giữ một bản ghi.
type Setting struct {
	SiteName     string `json:"siteName" bson:"siteName"`         // Tên site
	Logo         string `json:"logo" bson:"logo"`                 // Logo (base64 hoặc URL)
	PrimaryColor string `json:"primaryColor" bson:"primaryColor"` // Màu chủ đạo
	DarkBg       string `json:"darkBg" bson:"darkBg"`             // Màu nền dark mode
	LightBg      string `json:"lightBg" bson:"lightBg"`           // Màu nền light mode
	TextColor    string `json:"textColor" bson:"textColor"`       // Màu chữ
}

// DefaultSetting trả về cấu hình mặc định khi chưa có document nào được lưu
func DefaultSetting() Setting {
	return Setting{
		SiteName:     "ShinDoraNesub",
		Logo:         "",
		PrimaryColor: "#3B82F6",
		DarkBg:       "#0F0F0F",
		LightBg:      "#FFFFFF",
		TextColor:    "#E5E7EB",
	}
}
