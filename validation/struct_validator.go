package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/http/httpguts"

	"github.com/kbukum/fetchkit/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return toSnakeCase(fld.Name)
			}
			return name
		})

		_ = validate.RegisterValidation("header_name", func(fl validator.FieldLevel) bool {
			return httpguts.ValidHeaderFieldName(fl.Field().String())
		})
		_ = validate.RegisterValidation("header_value", func(fl validator.FieldLevel) bool {
			return httpguts.ValidHeaderFieldValue(fl.Field().String())
		})
		// A method is an RFC 7230 token, the same grammar as a header name.
		_ = validate.RegisterValidation("http_method", func(fl validator.FieldLevel) bool {
			return httpguts.ValidHeaderFieldName(fl.Field().String())
		})
	})
	return validate
}

// Validate validates a struct using struct tags.
// Returns nil or an *errors.AppError with code INVALID_INPUT whose "fields"
// detail lists every failing field.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Validation("validation failed").WithCause(err)
	}

	v := New()
	for _, e := range validationErrors {
		v.AddError(toSnakeCase(e.Field()), formatValidationError(e))
	}
	return v.Validate()
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, value any, tag string) error {
	err := getValidator().Var(value, tag)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Validation("validation failed").WithCause(err)
	}

	v := New()
	for _, e := range validationErrors {
		v.AddError(field, formatValidationError(e))
	}
	return v.Validate()
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	case "header_name":
		return "must be a valid HTTP header name"
	case "header_value":
		return "must be a valid HTTP header value"
	case "http_method":
		return "must be a valid HTTP method token"
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
