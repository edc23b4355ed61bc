// Package formguard validates a registration form submission and decides
// whether the submission may proceed.
package formguard

import (
	"errors"
	"regexp"
	"unicode/utf16"
)

const (
	MsgInvalidEmail      = "Enter a valid email address."
	MsgInvalidPesel      = "Pesel number must be exactly 11 digits."
	MsgPasswordTooShort  = "Password must be at least 8 characters long."
	MsgPasswordsMismatch = "Passwords do not match."

	MinPasswordLength = 8
)

// whitespace here follows the browser's notion of \s, which is wider than RE2's ASCII class.
const notSpaceOrAt = `[^\s\v\p{Z}\x{FEFF}@]+`

var (
	emailRegex = regexp.MustCompile(`^` + notSpaceOrAt + `@` + notSpaceOrAt + `\.` + notSpaceOrAt + `$`)
	peselRegex = regexp.MustCompile(`^[0-9]{11}$`)
)

// Values holds the raw field values read at submit time.
type Values struct {
	Email     string
	Pesel     string
	Password1 string
	Password2 string
}

// Get returns the value of the given field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldEmail:
		return v.Email
	case FieldPesel:
		return v.Pesel
	case FieldPassword1:
		return v.Password1
	case FieldPassword2:
		return v.Password2
	}
	return ""
}

// ValidationError reports a single failed check.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Result is the outcome of one validation run. Messages only contains
// failing fields.
type Result struct {
	Valid    bool
	Messages map[Field]string
}

// Message returns the error text for field, or "" if it passed.
func (r Result) Message(field Field) string {
	return r.Messages[field]
}

// Errors returns the failed checks in field order.
func (r Result) Errors() []*ValidationError {
	var errs []*ValidationError
	for _, field := range Fields {
		if msg, ok := r.Messages[field]; ok {
			errs = append(errs, &ValidationError{Field: field, Message: msg})
		}
	}
	return errs
}

// Err joins all failed checks into one error, nil when valid.
func (r Result) Err() error {
	var errs []error
	for _, e := range r.Errors() {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New(MsgInvalidEmail)
	}
	return nil
}

func validatePesel(pesel string) error {
	if !peselRegex.MatchString(pesel) {
		return errors.New(MsgInvalidPesel)
	}
	return nil
}

// textLength counts UTF-16 code units, the unit a browser reports for input length.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func validatePassword(password string) error {
	if textLength(password) < MinPasswordLength {
		return errors.New(MsgPasswordTooShort)
	}
	return nil
}

func validatePasswordMatch(password, confirmation string) error {
	if password != confirmation {
		return errors.New(MsgPasswordsMismatch)
	}
	return nil
}

// Validate runs all four checks. Every check runs regardless of the others.
func Validate(values Values) Result {
	messages := make(map[Field]string)
	if err := validateEmail(values.Email); err != nil {
		messages[FieldEmail] = err.Error()
	}

	if err := validatePesel(values.Pesel); err != nil {
		messages[FieldPesel] = err.Error()
	}

	if err := validatePassword(values.Password1); err != nil {
		messages[FieldPassword1] = err.Error()
	}

	if err := validatePasswordMatch(values.Password1, values.Password2); err != nil {
		messages[FieldPassword2] = err.Error()
	}
	return Result{
		Valid:    len(messages) == 0,
		Messages: messages,
	}
}
