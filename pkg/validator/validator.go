package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"brims/internal/domain"
	"brims/pkg/e"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	RegisterCustomValidations(validate)
}

// Check validates s and converts failures into an *e.ValidationError keyed
// by JSON field path.
func Check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return e.Wrap("validator.Check", e.ErrInvalidInput)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = message(fe)
	}
	return &e.ValidationError{Fields: fields}
}

func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must not be negative"
	case "max":
		return "is too long"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "severity":
		return "must be Low, Medium, High or Critical"
	case "status":
		return "must be Reported, Investigating, Resolved or Archived"
	default:
		return "is invalid"
	}
}

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("severity", validateSeverity)
	validate.RegisterValidation("status", validateStatus)
}

func validateSeverity(fl validator.FieldLevel) bool {
	return domain.Severity(fl.Field().String()).Rank() > 0
}

func validateStatus(fl validator.FieldLevel) bool {
	return domain.IncidentStatus(fl.Field().String()).Valid()
}
