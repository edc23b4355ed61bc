package sessions

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	store := session.New(session.Config{Storage: memory.New()})
	app := fiber.New()
	app.Use(SessionMiddleware(store))
	app.Get("/login", func(ctx *fiber.Ctx) error {
		data := Get(ctx)
		data.UserID = 7
		if err := Reset(ctx, &data); err != nil {
			return err
		}
		return ctx.SendString(data.ID())
	})
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		data := Get(ctx)
		return ctx.SendString(fmt.Sprintf("%d %v", data.UserID, data.IsLoggedIn()))
	})
	app.Get("/logout", func(ctx *fiber.Ctx) error {
		return Destroy(ctx)
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string, cookie string) (string, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	setCookie := ""
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			setCookie = c.Name + "=" + c.Value
		}
	}
	return string(body), setCookie
}

func TestSessionRoundTrip(t *testing.T) {
	app := newTestApp()

	body, _ := doGet(t, app, "/whoami", "")
	assert.Equal(t, "0 false", body)

	sessionID, cookie := doGet(t, app, "/login", "")
	require.NotEmpty(t, cookie)
	assert.Equal(t, "session_id="+sessionID, cookie)

	body, _ = doGet(t, app, "/whoami", cookie)
	assert.Equal(t, "7 true", body)

	doGet(t, app, "/logout", cookie)
	body, _ = doGet(t, app, "/whoami", cookie)
	assert.Equal(t, "0 false", body)
}
