package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens a validation error into a field → message map
// for re-rendering forms. Non-validation errors map to a single "form"
// entry.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "invalid form submission"
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Value is too short."
	case "max":
		return "Value is too long."
	case "alphanum":
		return "Use letters and numbers only."
	default:
		return "Invalid value."
	}
}
