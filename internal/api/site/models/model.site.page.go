package sitemodels

// Page là một trang nội dung tĩnh, định danh bằng slug thay vì id sinh tự động.
type Page struct {
	Slug    string `json:"slug" bson:"slug" index:"unique"` // Khóa tự nhiên của trang
	Title   string `json:"title" bson:"title"`              // Tiêu đề
	Content string `json:"content" bson:"content"`          // Nội dung
}

// FallbackPages là nội dung dựng sẵn cho các slug quen thuộc khi chưa có
// document nào được lưu. Trang admin tạo mới sẽ ghi đè các nội dung này.
var FallbackPages = map[string]Page{
	"about": {
		Slug:    "about",
		Title:   "About Us",
		Content: "ShinDoraNesub adalah proyek penggemar untuk anime klasik seperti Doraemon, Crayon Shin-chan, Ninja Hattori-kun, dan Chibi Maruko-chan. Semua video di-embed dari sumber publik.\n\nKontak: shindoranesub@gmail.com",
	},
	"disclaimer": {
		Slug:    "disclaimer",
		Title:   "Disclaimer",
		Content: "Semua video di situs ini berasal dari sumber publik. Kami tidak menyimpan atau mengklaim kepemilikan konten apa pun.\n\nKontak: shindoranesub@gmail.com",
	},
	"privacy": {
		Slug:    "privacy",
		Title:   "Privacy Policy",
		Content: "Kami tidak mengumpulkan data pengguna. Semua pengaturan disimpan lokal di browser (LocalStorage).\n\nKontak: shindoranesub@gmail.com",
	},
	"terms": {
		Slug:    "terms",
		Title:   "Terms & Conditions",
		Content: "Dengan menggunakan situs ini, pengguna setuju untuk menonton konten hanya untuk penggunaan pribadi.\n\nKontak: shindoranesub@gmail.com",
	},
}

// FallbackPage trả về trang dựng sẵn theo slug, hoặc placeholder rỗng
// với title "Not Found" cho slug không quen thuộc.
func FallbackPage(slug string) Page {
	if page, ok := FallbackPages[slug]; ok {
		return page
	}
	return Page{Slug: slug, Title: "Not Found", Content: ""}
}
