// Package basehdl - Test parse/validate body và format response thống nhất.
package basehdl

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shindora_cms/internal/common"
	"shindora_cms/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

type echoInput struct {
	Name string `json:"name" validate:"required"`
}

func newEchoApp() *fiber.App {
	global.InitValidator()

	h := NewBaseHandler[interface{}, echoInput, interface{}]()
	app := fiber.New()

	app.Post("/echo", func(c fiber.Ctx) error {
		input := new(echoInput)
		if err := h.ParseAndValidateBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}
		return h.HandleResponse(c, input, nil)
	})

	app.Get("/not-found", func(c fiber.Ctx) error {
		return h.HandleResponse(c, nil, common.ErrNotFound)
	})

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var parsed map[string]interface{}
	json.Unmarshal(raw, &parsed)
	return resp.StatusCode, parsed
}

func TestParseAndValidateBody_EmptyBody(t *testing.T) {
	app := newEchoApp()

	status, body := postJSON(t, app, "/echo", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Request body is empty", body["detail"])
}

func TestParseAndValidateBody_InvalidJSON(t *testing.T) {
	app := newEchoApp()

	status, body := postJSON(t, app, "/echo", "{khong hop le")
	assert.Equal(t, http.StatusBadRequest, status)
	detail, _ := body["detail"].(string)
	assert.True(t, strings.HasPrefix(detail, "Invalid JSON body"))
}

func TestParseAndValidateBody_ValidationFailure(t *testing.T) {
	app := newEchoApp()

	status, body := postJSON(t, app, "/echo", `{"name": ""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	detail, _ := body["detail"].(string)
	assert.Contains(t, detail, "Name")
	assert.Contains(t, detail, "required")
}

func TestParseAndValidateBody_Success(t *testing.T) {
	app := newEchoApp()

	// Thành công trả thẳng resource JSON, không bọc envelope
	status, body := postJSON(t, app, "/echo", `{"name": "Doraemon"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Doraemon", body["name"])
	_, hasEnvelope := body["data"]
	assert.False(t, hasEnvelope)
}

func TestHandleResponse_ErrorFormat(t *testing.T) {
	app := newEchoApp()

	req := httptest.NewRequest("GET", "/not-found", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	json.Unmarshal(raw, &body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", body["detail"])
}

func TestHandleRoot(t *testing.T) {
	h, err := NewSystemHandler()
	assert.NoError(t, err)

	app := fiber.New()
	app.Get("/api/", h.HandleRoot)

	req := httptest.NewRequest("GET", "/api/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	json.Unmarshal(raw, &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ShinDoraNesub API", body["message"])
}
