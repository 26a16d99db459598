// Package middleware - Test gate xác thực admin trên route ghi dữ liệu.
package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shindora_cms/config"
	"shindora_cms/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

const testAdminToken = "cd9b75258cf596ddcc1e5e004d360f9651cfc5c5c146d470c30b5bf561c1ae31" // sha256("Emilia9@#$")

func newTestApp() *fiber.App {
	global.MongoDB_ServerConfig = &config.Configuration{AdminPassword: "Emilia9@#$"}

	app := fiber.New()
	okHandler := func(c fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{"ok": true})
	}

	// Route riêng lẻ bọc bằng AdminRequired
	app.Put("/settings", AdminRequired(okHandler))
	app.Get("/settings", okHandler)

	// Group admin-only dùng AdminAuthMiddleware qua Use()
	adminGroup := app.Group("/admin-area")
	adminGroup.Use(AdminAuthMiddleware())
	adminGroup.Get("/ping", okHandler)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var parsed map[string]interface{}
	json.Unmarshal(body, &parsed)
	return resp.StatusCode, parsed
}

func TestAdminRequired_MissingHeader(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, "PUT", "/settings", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["detail"])
}

func TestAdminRequired_WrongScheme(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, "PUT", "/settings", "Token "+testAdminToken)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["detail"])
}

func TestAdminRequired_InvalidToken(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, "PUT", "/settings", "Bearer sai-token")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["detail"])
}

func TestAdminRequired_ValidToken(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, "PUT", "/settings", "Bearer "+testAdminToken)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
}

func TestAdminRequired_RejectedRequestDoesNotRunHandler(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{AdminPassword: "Emilia9@#$"}

	app := fiber.New()
	writes := 0
	app.Delete("/videos/:id", AdminRequired(func(c fiber.Ctx) error {
		writes++
		return c.SendStatus(http.StatusOK)
	}))

	// Request bị chặn không được chạm tới handler ghi dữ liệu
	status, body := doRequest(t, app, "DELETE", "/videos/abc", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["detail"])
	assert.Equal(t, 0, writes)

	status, _ = doRequest(t, app, "DELETE", "/videos/abc", "Bearer sai-token")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, 0, writes)

	status, _ = doRequest(t, app, "DELETE", "/videos/abc", "Bearer "+testAdminToken)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, writes)
}

func TestAdminRequired_DoesNotGuardReadRoute(t *testing.T) {
	app := newTestApp()

	// Route đọc cùng prefix không bị gate chặn
	status, _ := doRequest(t, app, "GET", "/settings", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestAdminAuthMiddleware_GuardsWholeGroup(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, "GET", "/admin-area/ping", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["detail"])

	status, _ = doRequest(t, app, "GET", "/admin-area/ping", "Bearer "+testAdminToken)
	assert.Equal(t, http.StatusOK, status)
}
