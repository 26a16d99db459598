// Package translatedto chứa các DTO cho dịch vụ dịch thuật.
package translatedto

// TranslateInput là yêu cầu dịch một đoạn văn bản
type TranslateInput struct {
	Text   string `json:"text" validate:"required"`
	Source string `json:"source" validate:"omitempty"` // Mặc định "en"
	Target string `json:"target" validate:"omitempty"` // Mặc định "id"
}

// TranslateOutput là kết quả dịch trả về cho client
type TranslateOutput struct {
	TranslatedText string `json:"translatedText"`
}
