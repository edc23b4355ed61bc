package csrf

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/memory/v2"
	"github.com/khanghh/evote/internal/middlewares/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	store := session.New(session.Config{Storage: memory.New()})
	app := fiber.New()
	app.Use(sessions.SessionMiddleware(store))
	app.Use(New())
	app.Get("/form", func(ctx *fiber.Ctx) error {
		return ctx.SendString(Token(ctx))
	})
	app.Post("/form", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	return app
}

func fetchToken(t *testing.T, app *fiber.App) (string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/form", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			cookie = c.Name + "=" + c.Value
		}
	}
	require.NotEmpty(t, cookie)
	require.Len(t, string(body), 64)
	return string(body), cookie
}

func postForm(t *testing.T, app *fiber.App, cookie string, form url.Values) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/form", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCSRFAcceptsSessionToken(t *testing.T) {
	app := newTestApp()
	token, cookie := fetchToken(t, app)

	status := postForm(t, app, cookie, url.Values{CSRFTokenFormKey: {token}})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	app := newTestApp()
	token, cookie := fetchToken(t, app)

	req := httptest.NewRequest(fiber.MethodPost, "/form", nil)
	req.Header.Set("Cookie", cookie)
	req.Header.Set(CSRFTokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCSRFRejectsMissingOrWrongToken(t *testing.T) {
	app := newTestApp()
	_, cookie := fetchToken(t, app)

	assert.Equal(t, fiber.StatusForbidden, postForm(t, app, cookie, url.Values{}))
	assert.Equal(t, fiber.StatusForbidden, postForm(t, app, cookie, url.Values{CSRFTokenFormKey: {"forged"}}))
	assert.Equal(t, fiber.StatusForbidden, postForm(t, app, "", url.Values{CSRFTokenFormKey: {"forged"}}))
}

func TestCSRFRejectsSameLengthToken(t *testing.T) {
	app := newTestApp()
	token, cookie := fetchToken(t, app)

	forged := []byte(token)
	if forged[len(forged)-1] == '0' {
		forged[len(forged)-1] = '1'
	} else {
		forged[len(forged)-1] = '0'
	}
	assert.Equal(t, fiber.StatusForbidden, postForm(t, app, cookie, url.Values{CSRFTokenFormKey: {string(forged)}}))
	assert.Equal(t, fiber.StatusForbidden, postForm(t, app, cookie, url.Values{CSRFTokenFormKey: {token[:32]}}))
	assert.Equal(t, fiber.StatusOK, postForm(t, app, cookie, url.Values{CSRFTokenFormKey: {token}}))
}
