package formguard

// Form is the page the guard is bound to. It reads input values and writes
// error text into the display element of each field.
type Form interface {
	Value(field Field) string
	SetErrorText(field Field, text string)
}

// SubmitEvent is the submission attempt being guarded.
type SubmitEvent interface {
	PreventDefault()
}

// Guard intercepts form submissions.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// OnSubmit clears all error targets, validates the form and writes the
// failing messages back. The event is cancelled iff any check failed.
func (g *Guard) OnSubmit(form Form, event SubmitEvent) Result {
	var values Values
	values.Email = form.Value(FieldEmail)
	values.Pesel = form.Value(FieldPesel)
	values.Password1 = form.Value(FieldPassword1)
	values.Password2 = form.Value(FieldPassword2)

	for _, field := range Fields {
		form.SetErrorText(field, "")
	}

	result := Validate(values)
	for _, field := range Fields {
		if msg, ok := result.Messages[field]; ok {
			form.SetErrorText(field, msg)
		}
	}

	if !result.Valid {
		event.PreventDefault()
	}
	return result
}
