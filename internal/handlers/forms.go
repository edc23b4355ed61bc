package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/evote/internal/formguard"
)

// submittedForm exposes a posted form to the guard. Error text is collected
// and handed to the template instead of being written into a live page.
type submittedForm struct {
	ctx        *fiber.Ctx
	formErrors map[formguard.Field]string
}

func newSubmittedForm(ctx *fiber.Ctx) *submittedForm {
	return &submittedForm{
		ctx:        ctx,
		formErrors: make(map[formguard.Field]string),
	}
}

func (f *submittedForm) Value(field formguard.Field) string {
	return f.ctx.FormValue(field.InputName())
}

func (f *submittedForm) SetErrorText(field formguard.Field, text string) {
	if text == "" {
		delete(f.formErrors, field)
		return
	}
	f.formErrors[field] = text
}

// submitEvent records whether the guard cancelled the submission.
type submitEvent struct {
	cancelled bool
}

func (e *submitEvent) PreventDefault() {
	e.cancelled = true
}
