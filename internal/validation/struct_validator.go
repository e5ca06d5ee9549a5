package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator checks struct field tags (`validate:"required,min=1"`)
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator creates a validator using json tag names in error output
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &StructValidator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *StructValidator) ValidateStruct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// FormatValidationError flattens validator errors into one readable error
func FormatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, e.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrStructInvalid, strings.Join(msgs, "; "))
}

// ErrStructInvalid wraps all struct validation failures
var ErrStructInvalid = errors.New("validation failed")
