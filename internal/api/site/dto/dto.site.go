// Package sitedto chứa các DTO cho settings và pages.
package sitedto

// SettingUpdateInput cập nhật một phần cấu hình site: chỉ các trường khác nil mới được ghi.
type SettingUpdateInput struct {
	SiteName     *string `json:"siteName" validate:"omitempty"`
	Logo         *string `json:"logo" validate:"omitempty"`
	PrimaryColor *string `json:"primaryColor" validate:"omitempty"`
	DarkBg       *string `json:"darkBg" validate:"omitempty"`
	LightBg      *string `json:"lightBg" validate:"omitempty"`
	TextColor    *string `json:"textColor" validate:"omitempty"`
}

// PageUpdateInput cập nhật một phần trang nội dung theo slug
type PageUpdateInput struct {
	Title   *string `json:"title" validate:"omitempty"`
	Content *string `json:"content" validate:"omitempty"`
}
