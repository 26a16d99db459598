// Package sitemodels - Test nội dung dựng sẵn cho pages và settings mặc định.
package sitemodels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackPage_KnownSlugs(t *testing.T) {
	about := FallbackPage("about")
	assert.Equal(t, "about", about.Slug)
	assert.Equal(t, "About Us", about.Title)
	assert.True(t, strings.Contains(about.Content, "Kontak: shindoranesub@gmail.com"))

	assert.Equal(t, "Disclaimer", FallbackPage("disclaimer").Title)
	assert.Equal(t, "Privacy Policy", FallbackPage("privacy").Title)
	assert.Equal(t, "Terms & Conditions", FallbackPage("terms").Title)
}

func TestFallbackPage_UnknownSlug(t *testing.T) {
	page := FallbackPage("khong-ton-tai")

	// Slug lạ trả về placeholder rỗng, giữ nguyên slug yêu cầu
	assert.Equal(t, "khong-ton-tai", page.Slug)
	assert.Equal(t, "Not Found", page.Title)
	assert.Equal(t, "", page.Content)
}

func TestDefaultSetting(t *testing.T) {
	setting := DefaultSetting()

	assert.Equal(t, "ShinDoraNesub", setting.SiteName)
	assert.Equal(t, "", setting.Logo)
	assert.Equal(t, "#3B82F6", setting.PrimaryColor)
	assert.Equal(t, "#0F0F0F", setting.DarkBg)
	assert.Equal(t, "#FFFFFF", setting.LightBg)
	assert.Equal(t, "#E5E7EB", setting.TextColor)
}
