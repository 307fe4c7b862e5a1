package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Submission is a validated contact form entry. The only way to obtain one is
// ParseSubmission, so every Submission satisfies the field constraints.
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"email"`
	Message string `json:"message"`
}

// submissionFields lists the schema fields in the order they are checked.
var submissionFields = []string{"name", "email", "message"}

// Validation messages reported in an ErrorTree.
const (
	msgTooSmall     = "Too small: expected string to have >=1 characters"
	msgInvalidEmail = "Invalid email address"
)

// ErrorTree is the field-path breakdown of a validation failure. Errors holds
// messages about the payload as a whole; Properties holds one subtree per
// invalid field.
type ErrorTree struct {
	Errors     []string              `json:"errors"`
	Properties map[string]*ErrorTree `json:"properties,omitempty"`
}

func newErrorTree() *ErrorTree {
	return &ErrorTree{Errors: []string{}}
}

func (t *ErrorTree) addRoot(msg string) {
	t.Errors = append(t.Errors, msg)
}

func (t *ErrorTree) addField(field, msg string) {
	if t.Properties == nil {
		t.Properties = make(map[string]*ErrorTree)
	}
	sub, ok := t.Properties[field]
	if !ok {
		sub = newErrorTree()
		t.Properties[field] = sub
	}
	sub.addRoot(msg)
}

func (t *ErrorTree) hasField(field string) bool {
	_, ok := t.Properties[field]
	return ok
}

// RootError returns a tree holding a single payload-level message.
func RootError(msg string) *ErrorTree {
	t := newErrorTree()
	t.addRoot(msg)
	return t
}

// Empty reports whether the tree records no failures.
func (t *ErrorTree) Empty() bool {
	return len(t.Errors) == 0 && len(t.Properties) == 0
}

// Fields returns the names of the invalid fields in schema order.
func (t *ErrorTree) Fields() []string {
	var out []string
	for _, f := range submissionFields {
		if t.hasField(f) {
			out = append(out, f)
		}
	}
	return out
}

// newValidator returns a validator that reports JSON field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var defaultValidator = newValidator()

// ParseSubmission decodes body as a JSON object and checks it against the
// submission schema. It returns a nil tree on success; otherwise the returned
// Submission is the zero value and must not be used.
func ParseSubmission(body string) (Submission, *ErrorTree) {
	return parseSubmission(defaultValidator, body)
}

func parseSubmission(v *validator.Validate, body string) (Submission, *ErrorTree) {
	tree := newErrorTree()

	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		tree.addRoot(fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return Submission{}, tree
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		tree.addRoot(fmt.Sprintf("Invalid input: expected object, received %s", jsonType(decoded, true)))
		return Submission{}, tree
	}

	values := make(map[string]string, len(submissionFields))
	for _, f := range submissionFields {
		raw, present := obj[f]
		s, isString := raw.(string)
		if !isString {
			tree.addField(f, fmt.Sprintf("Invalid input: expected string, received %s", jsonType(raw, present)))
			continue
		}
		values[f] = s
	}

	sub := Submission{Name: values["name"], Email: values["email"], Message: values["message"]}
	if err := v.Struct(sub); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			tree.addRoot(err.Error())
		}
		for _, fe := range fieldErrs {
			// A type error already explains this field.
			if tree.hasField(fe.Field()) {
				continue
			}
			tree.addField(fe.Field(), tagMessage(fe.Tag()))
		}
	}

	if !tree.Empty() {
		return Submission{}, tree
	}
	return sub, nil
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return msgTooSmall
	case "email":
		return msgInvalidEmail
	default:
		return fmt.Sprintf("Invalid input: failed %s check", tag)
	}
}

// jsonType names the JSON type of a decoded value.
func jsonType(v any, present bool) string {
	if !present {
		return "undefined"
	}
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
