package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/evote/internal/middlewares/sessions"
	"github.com/khanghh/evote/params"
)

const (
	CSRFTokenSessionKey = "_csrf"
	CSRFTokenFormKey    = "_csrf"
	CSRFTokenHeader     = "X-CSRF-Token"
	csrfTokenLocalsKey  = "csrfToken"
)

var (
	ErrInvalidToken = errors.New("invalid CSRF token")
)

type CSRF struct {
	Token     string
	ExpiresAt time.Time
}

func init() {
	gob.Register(CSRF{})
}

// Token returns the CSRF token of the current request, "" if the middleware is not installed.
func Token(ctx *fiber.Ctx) string {
	token, _ := ctx.Locals(csrfTokenLocalsKey).(string)
	return token
}

func verify(ctx *fiber.Ctx, csrf CSRF) bool {
	token := ctx.Get(CSRFTokenHeader)
	if token == "" {
		token = ctx.FormValue(CSRFTokenFormKey)
	}
	if time.Now().After(csrf.ExpiresAt) || csrf.Token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(csrf.Token), []byte(token)) == 1
}

func randomToken() string {
	const tokenLength = 32
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate CSRF token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func generateCSRF() CSRF {
	return CSRF{
		Token:     randomToken(),
		ExpiresAt: time.Now().Add(params.CSRFTokenExpiration),
	}
}

// New must be installed after the session middleware. Unsafe methods are
// rejected with 403 unless they carry the session's token.
func New() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		csrf, ok := sessions.Value(ctx, CSRFTokenSessionKey).(CSRF)
		switch ctx.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		default:
			if !ok || !verify(ctx, csrf) {
				slog.Warn("Rejected request with invalid CSRF token", "path", ctx.Path(), "ip", ctx.IP())
				return fiber.NewError(fiber.StatusForbidden, ErrInvalidToken.Error())
			}
		}

		if !ok || time.Now().After(csrf.ExpiresAt) {
			csrf = generateCSRF()
			sessions.SetValue(ctx, CSRFTokenSessionKey, csrf)
		}
		ctx.Locals(csrfTokenLocalsKey, csrf.Token)
		return ctx.Next()
	}
}
