package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/patch"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so error details match the payload keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(fl.Field().String())
	})
	return v
}

// Struct validates a create payload against its `validate` tags.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = formatValidationError(fe)
	}
	return apperrors.NewValidationError("validation failed", details)
}

// StructWith validates s and merges in problems its tags cannot express,
// such as decimal ranges.
func StructWith(s interface{}, extra Errors) error {
	err := Struct(s)
	if len(extra) == 0 {
		return err
	}
	if err != nil && apperrors.DetailsOf(err) == nil {
		return err
	}
	merged := Errors{}
	for k, v := range apperrors.DetailsOf(err) {
		merged[k] = v
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return merged.Err()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "phone":
		return e.Field() + " must be a valid phone number"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// Errors collects per-field problems found in a partial update.
type Errors map[string]string

// Err returns nil when nothing was collected.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return apperrors.NewValidationError("validation failed", e)
}

// RequiredText rejects null or blank values for a required text attribute.
func (e Errors) RequiredText(name string, f patch.Field[string]) {
	if !f.Set {
		return
	}
	if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
		e[name] = name + " is required"
	}
}

// Email checks a required email attribute.
func (e Errors) Email(name string, f patch.Field[string]) {
	e.RequiredText(name, f)
	if _, bad := e[name]; bad || !f.Set {
		return
	}
	if validate.Var(*f.Value, "email") != nil {
		e[name] = name + " must be a valid email address"
	}
}

// Phone checks a phone attribute; required phones must not be cleared.
func (e Errors) Phone(name string, f patch.Field[string], required bool) {
	if required {
		e.RequiredText(name, f)
	}
	if _, bad := e[name]; bad || f.Value == nil {
		return
	}
	if !CompiledPatterns.Phone.MatchString(*f.Value) {
		e[name] = name + " must be a valid phone number"
	}
}

// OneOf checks an enumerated attribute. Null is accepted unless required.
func (e Errors) OneOf(name string, f patch.Field[string], required bool, allowed ...string) {
	if required {
		e.RequiredText(name, f)
	}
	if _, bad := e[name]; bad || f.Value == nil {
		return
	}
	for _, a := range allowed {
		if *f.Value == a {
			return
		}
	}
	e[name] = name + " must be one of: " + strings.Join(allowed, " ")
}

// Required rejects null for a required non-text attribute.
func Required[T any](e Errors, name string, f patch.Field[T]) {
	if f.IsNull() {
		e[name] = name + " is required"
	}
}

// Positive rejects values below one, used for ids and capacities.
func Positive[T int | int64](e Errors, name string, f patch.Field[T]) {
	if f.Value != nil && *f.Value < 1 {
		e[name] = name + " must be greater than 0"
	}
}

// NonNegativeInt rejects negative counts such as years of experience.
func (e Errors) NonNegativeInt(name string, f patch.Field[int]) {
	if f.Value != nil && *f.Value < 0 {
		e[name] = name + " must not be negative"
	}
}

// NonNegative rejects negative monetary or mark values.
func (e Errors) NonNegative(name string, d *decimal.Decimal) {
	if d != nil && d.IsNegative() {
		e[name] = name + " must not be negative"
	}
}
