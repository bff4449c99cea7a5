package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thoreinstein/llcheck/internal/errors"
)

// Validation errors for settings fields.
var (
	// ErrUnsupportedVersion indicates an unknown settings version.
	ErrUnsupportedVersion = errors.New("unsupported settings version")

	// ErrInvalidValue indicates a setting holds a value outside its allowed set.
	ErrInvalidValue = errors.New("invalid value")
)

// structValidator checks the validate tags on Config. Field names in its
// errors are the settings keys, taken from the mapstructure tags.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a Config for validity.
// Returns nil if valid, or one error per invalid field in declaration order.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("settings are nil")}
	}

	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{errors.Wrap(err, "checking settings")}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, toFieldError(fe))
	}
	return errs
}

func toFieldError(fe validator.FieldError) *FieldError {
	out := &FieldError{
		Field: fe.Field(),
		Value: fmt.Sprint(fe.Value()),
		Err:   ErrInvalidValue,
	}
	switch fe.Tag() {
	case "eq":
		if fe.Field() == KeyVersion {
			out.Err = ErrUnsupportedVersion
		}
	case "oneof":
		out.Allowed = strings.Fields(fe.Param())
	}
	return out
}

// FieldError represents an invalid settings field.
type FieldError struct {
	Field   string
	Value   string
	Allowed []string
	Err     error
}

func (e *FieldError) Error() string {
	msg := e.Field + ": " + e.Err.Error() + ": " + strconv.Quote(e.Value)
	if len(e.Allowed) > 0 {
		msg += " (valid: " + strings.Join(e.Allowed, ", ") + ")"
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
