package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/evote/internal/middlewares/csrf"
	"github.com/khanghh/evote/internal/middlewares/sessions"
	"github.com/khanghh/evote/internal/render"
	"github.com/khanghh/evote/internal/users"
)

// LoginHandler handles sign in, sign out and the landing page
type LoginHandler struct {
	userService UserService
}

// NewLoginHandler returns a new instance of LoginHandler.
func NewLoginHandler(userService UserService) *LoginHandler {
	return &LoginHandler{
		userService: userService,
	}
}

func (h *LoginHandler) GetLogin(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	if session.IsLoggedIn() {
		return ctx.Redirect("/")
	}
	return render.RenderLogin(ctx, render.LoginPageData{
		CSRFToken:  csrf.Token(ctx),
		Registered: ctx.Query("registered") != "",
	})
}

func (h *LoginHandler) PostLogin(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	if session.IsLoggedIn() {
		return ctx.Redirect("/")
	}

	var (
		email    = ctx.FormValue("email")
		password = ctx.FormValue("password")
	)
	pageData := render.LoginPageData{
		CSRFToken: csrf.Token(ctx),
		Email:     email,
	}
	if email == "" || password == "" {
		pageData.ErrorMsg = MsgLoginMissingFields
		return render.RenderLogin(ctx, pageData)
	}

	user, err := h.userService.Authenticate(ctx.Context(), email, password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		slog.Warn("Login failed", "ip", ctx.IP())
		pageData.ErrorMsg = MsgLoginInvalidCredentials
		return render.RenderLogin(ctx, pageData)
	} else if err != nil {
		slog.Error("Failed to authenticate user", "error", err)
		return render.RenderInternalServerError(ctx)
	}

	err = sessions.Reset(ctx, &sessions.SessionData{
		IP:        ctx.IP(),
		UserID:    user.ID,
		LoginTime: time.Now(),
	})
	if err != nil {
		return err
	}
	slog.Info("User logged in", "userID", user.ID)
	return ctx.Redirect("/")
}

func (h *LoginHandler) PostLogout(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	if session.IsLoggedIn() {
		slog.Info("User logged out", "userID", session.UserID)
	}
	return forceLogout(ctx)
}

func (h *LoginHandler) GetHome(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	if !session.IsLoggedIn() {
		return redirect(ctx, "/login")
	}

	user, err := h.userService.GetUserByID(ctx.Context(), session.UserID)
	if errors.Is(err, users.ErrUserNotFound) {
		return forceLogout(ctx)
	} else if err != nil {
		slog.Error("Failed to get user", "userID", session.UserID, "error", err)
		return render.RenderInternalServerError(ctx)
	}

	return render.RenderHomePage(ctx, render.HomePageData{
		CSRFToken: csrf.Token(ctx),
		Email:     user.Email,
		Pesel:     user.Pesel,
	})
}
