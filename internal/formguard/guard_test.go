package formguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeForm struct {
	values   Values
	errTexts map[Field]string
	writes   []Field
}

func newFakeForm(values Values) *fakeForm {
	return &fakeForm{
		values: values,
		errTexts: map[Field]string{
			FieldEmail:     "stale",
			FieldPesel:     "stale",
			FieldPassword1: "stale",
			FieldPassword2: "stale",
		},
	}
}

func (f *fakeForm) Value(field Field) string {
	return f.values.Get(field)
}

func (f *fakeForm) SetErrorText(field Field, text string) {
	f.errTexts[field] = text
	f.writes = append(f.writes, field)
}

type fakeEvent struct {
	prevented int
}

func (e *fakeEvent) PreventDefault() {
	e.prevented++
}

func TestGuardAllowsValidSubmission(t *testing.T) {
	form := newFakeForm(validValues)
	event := &fakeEvent{}

	result := NewGuard().OnSubmit(form, event)

	assert.True(t, result.Valid)
	assert.Equal(t, 0, event.prevented)
	for _, field := range Fields {
		assert.Equal(t, "", form.errTexts[field], field)
	}
}

func TestGuardBlocksInvalidSubmission(t *testing.T) {
	form := newFakeForm(Values{
		Email:     "bad-email",
		Pesel:     "12345678901",
		Password1: "longpass1",
		Password2: "longpass1",
	})
	event := &fakeEvent{}

	result := NewGuard().OnSubmit(form, event)

	assert.False(t, result.Valid)
	assert.Equal(t, 1, event.prevented)
	assert.Equal(t, MsgInvalidEmail, form.errTexts[FieldEmail])
	assert.Equal(t, "", form.errTexts[FieldPesel])
	assert.Equal(t, "", form.errTexts[FieldPassword1])
	assert.Equal(t, "", form.errTexts[FieldPassword2])
}

func TestGuardClearsTargetsBeforeWriting(t *testing.T) {
	form := newFakeForm(Values{Pesel: "123", Password1: "short", Password2: "short"})
	NewGuard().OnSubmit(form, &fakeEvent{})

	// every target is cleared first, then the failing ones are written
	assert.Equal(t, Fields, form.writes[:len(Fields)])
	assert.Equal(t, []Field{FieldEmail, FieldPesel, FieldPassword1}, form.writes[len(Fields):])
}

func TestGuardIsIdempotent(t *testing.T) {
	guard := NewGuard()
	form := newFakeForm(Values{Email: "x", Pesel: "1", Password1: "a", Password2: "b"})

	first := guard.OnSubmit(form, &fakeEvent{})
	firstTexts := make(map[Field]string)
	for k, v := range form.errTexts {
		firstTexts[k] = v
	}
	second := guard.OnSubmit(form, &fakeEvent{})

	assert.Equal(t, first, second)
	assert.Equal(t, firstTexts, form.errTexts)
	assert.Len(t, second.Messages, 4)
}
