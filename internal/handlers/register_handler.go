package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/evote/internal/formguard"
	"github.com/khanghh/evote/internal/middlewares/csrf"
	"github.com/khanghh/evote/internal/middlewares/sessions"
	"github.com/khanghh/evote/internal/render"
	"github.com/khanghh/evote/internal/users"
)

type RegisterHandler struct {
	userService UserService
	guard       *formguard.Guard
}

func NewRegisterHandler(userService UserService) *RegisterHandler {
	return &RegisterHandler{
		userService: userService,
		guard:       formguard.NewGuard(),
	}
}

func (h *RegisterHandler) GetRegister(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	if session.IsLoggedIn() {
		return ctx.Redirect("/")
	}
	slog.Debug("Rendering registration form")
	return render.RenderRegister(ctx, render.RegisterPageData{
		CSRFToken: csrf.Token(ctx),
	})
}

func (h *RegisterHandler) PostRegister(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	if session.IsLoggedIn() {
		return ctx.Redirect("/")
	}

	form := newSubmittedForm(ctx)
	event := &submitEvent{}
	h.guard.OnSubmit(form, event)

	// passwords are never echoed back into the page
	pageData := render.RegisterPageData{
		CSRFToken:  csrf.Token(ctx),
		Email:      form.Value(formguard.FieldEmail),
		Pesel:      form.Value(formguard.FieldPesel),
		FormErrors: form.formErrors,
	}
	if event.cancelled {
		slog.Debug("Registration form rejected", "fields", len(form.formErrors))
		return render.RenderRegister(ctx, pageData)
	}

	user, err := h.userService.RegisterUser(ctx.Context(), users.RegisterUserOptions{
		Email:    pageData.Email,
		Pesel:    pageData.Pesel,
		Password: form.Value(formguard.FieldPassword1),
	})
	switch {
	case errors.Is(err, users.ErrEmailRegistered):
		pageData.FormErrors[formguard.FieldEmail] = MsgEmailRegistered
		return render.RenderRegister(ctx, pageData)
	case errors.Is(err, users.ErrEmailTooLong):
		pageData.FormErrors[formguard.FieldEmail] = MsgEmailTooLong
		return render.RenderRegister(ctx, pageData)
	case errors.Is(err, users.ErrPasswordTooLong):
		pageData.FormErrors[formguard.FieldPassword1] = MsgPasswordTooLong
		return render.RenderRegister(ctx, pageData)
	case err != nil:
		slog.Error("Failed to register user", "error", err)
		pageData.ErrorMsg = MsgRegisterFailed
		ctx.Status(fiber.StatusInternalServerError)
		return render.RenderRegister(ctx, pageData)
	}

	slog.Info("New user registered", "userID", user.ID)
	return redirect(ctx, "/login", "registered", 1)
}
