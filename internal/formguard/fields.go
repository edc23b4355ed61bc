package formguard

type Field string

const (
	FieldEmail     Field = "email"
	FieldPesel     Field = "pesel"
	FieldPassword1 Field = "password1"
	FieldPassword2 Field = "password2"
)

// Fields lists every guarded field in display order.
var Fields = []Field{FieldEmail, FieldPesel, FieldPassword1, FieldPassword2}

var inputIDs = map[Field]string{
	FieldEmail:     "id_email",
	FieldPesel:     "id_nr_pesel",
	FieldPassword1: "id_password1",
	FieldPassword2: "id_password2",
}

var inputNames = map[Field]string{
	FieldEmail:     "email",
	FieldPesel:     "nr_pesel",
	FieldPassword1: "password1",
	FieldPassword2: "password2",
}

var errorTargets = map[Field]string{
	FieldEmail:     "emailErrors",
	FieldPesel:     "peselErrors",
	FieldPassword1: "password1Errors",
	FieldPassword2: "password2Errors",
}

// InputID is the markup id of the input control.
func (f Field) InputID() string {
	return inputIDs[f]
}

// InputName is the form parameter name the input is submitted under.
func (f Field) InputName() string {
	return inputNames[f]
}

// ErrorTarget is the markup id of the element holding the field's error text.
func (f Field) ErrorTarget() string {
	return errorTargets[f]
}
