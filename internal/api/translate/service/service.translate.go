// Package translatesvc proxy yêu cầu dịch thuật sang LibreTranslate.
package translatesvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	translatedto "shindora_cms/internal/api/translate/dto"
	"shindora_cms/internal/logger"
	"shindora_cms/internal/utility"
)

const (
	// DefaultSourceLang là ngôn ngữ nguồn khi client không chỉ định
	DefaultSourceLang = "en"
	// DefaultTargetLang là ngôn ngữ đích khi client không chỉ định
	DefaultTargetLang = "id"
)

// TranslateService gọi dịch vụ dịch thuật bên ngoài.
// Lỗi dịch không bao giờ nổi lên caller: mọi thất bại đều degrade
// về chính văn bản đầu vào, client luôn nhận status 200.
type TranslateService struct {
	endpoint string
	client   *http.Client
	cache    *utility.Cache // Cache kết quả dịch thành công, nil = không cache
}

// NewTranslateService tạo translate service với endpoint và timeout chỉ định.
// cacheTTL <= 0 tắt cache.
func NewTranslateService(endpoint string, timeout time.Duration, cacheTTL time.Duration) *TranslateService {
	var cache *utility.Cache
	if cacheTTL > 0 {
		cache = utility.NewCache(cacheTTL, cacheTTL)
	}
	return &TranslateService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		cache:    cache,
	}
}

// libreTranslateRequest là payload gửi đến LibreTranslate
type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// libreTranslateResponse là payload LibreTranslate trả về
type libreTranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// cacheKey sinh key cache cho một yêu cầu dịch
func cacheKey(text, source, target string) string {
	return fmt.Sprintf("%s|%s|%s", source, target, text)
}

// Translate dịch văn bản qua dịch vụ bên ngoài.
// Trả về văn bản gốc khi gọi dịch vụ thất bại dưới bất kỳ hình thức nào.
func (s *TranslateService) Translate(ctx context.Context, input *translatedto.TranslateInput) translatedto.TranslateOutput {
	source := input.Source
	if source == "" {
		source = DefaultSourceLang
	}
	target := input.Target
	if target == "" {
		target = DefaultTargetLang
	}

	key := cacheKey(input.Text, source, target)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if text, ok := cached.(string); ok {
				return translatedto.TranslateOutput{TranslatedText: text}
			}
		}
	}

	translated, err := s.callEndpoint(ctx, input.Text, source, target)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"source": source,
			"target": target,
		}).Warn("Dịch thất bại, trả về văn bản gốc")
		return translatedto.TranslateOutput{TranslatedText: input.Text}
	}

	if s.cache != nil {
		s.cache.Set(key, translated)
	}
	return translatedto.TranslateOutput{TranslatedText: translated}
}

// callEndpoint gọi LibreTranslate và đọc kết quả dịch
func (s *TranslateService) callEndpoint(ctx context.Context, text, source, target string) (string, error) {
	payload := libreTranslateRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	var result libreTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.TranslatedText == "" {
		return "", fmt.Errorf("translate endpoint returned empty result")
	}
	return result.TranslatedText, nil
}

// Close giải phóng tài nguyên của service
func (s *TranslateService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
