package render

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/khanghh/evote/internal/formguard"
)

//go:embed templates/*.html
var templateFS embed.FS

var globalVars fiber.Map

func InitValues(data fiber.Map) {
	globalVars = data
}

func NewHtmlEngine(templateDir string) *html.Engine {
	if templateDir != "" {
		return html.NewFileSystem(http.Dir(templateDir), ".html")
	}
	renderFS, _ := fs.Sub(templateFS, "templates")
	return html.NewFileSystem(http.FS(renderFS), ".html")
}

func RenderRegister(ctx *fiber.Ctx, data RegisterPageData) error {
	vars := fiber.Map{
		"siteName":  globalVars["siteName"],
		"csrfToken": data.CSRFToken,
		"email":     data.Email,
		"pesel":     data.Pesel,
		"errorMsg":  data.ErrorMsg,
	}
	// one entry per error display element, empty when the field passed
	for _, field := range formguard.Fields {
		vars[field.ErrorTarget()] = data.FormErrors[field]
	}
	return ctx.Render("register", vars)
}

func RenderLogin(ctx *fiber.Ctx, data LoginPageData) error {
	return ctx.Render("login", fiber.Map{
		"siteName":   globalVars["siteName"],
		"csrfToken":  data.CSRFToken,
		"email":      data.Email,
		"registered": data.Registered,
		"errorMsg":   data.ErrorMsg,
	})
}

func RenderHomePage(ctx *fiber.Ctx, data HomePageData) error {
	return ctx.Render("home", fiber.Map{
		"siteName":  globalVars["siteName"],
		"csrfToken": data.CSRFToken,
		"email":     maskEmail(data.Email),
		"pesel":     maskPesel(data.Pesel),
	})
}

func renderError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).Render("error", fiber.Map{
		"siteName": globalVars["siteName"],
		"status":   status,
		"message":  message,
	})
}

func RenderBadRequestError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusBadRequest, "The request could not be understood.")
}

func RenderForbiddenError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusForbidden, "You are not allowed to do that. Reload the page and try again.")
}

func RenderNotFoundError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusNotFound, "Page not found.")
}

func RenderInternalServerError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusInternalServerError, "Something went wrong. Please try again later.")
}
