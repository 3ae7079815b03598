package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// Describe flattens a validation error into "field (tag=param), ..." form.
// Field paths drop the root struct name and are lower-cased, e.g. "server.port".
// Errors that are not ValidationErrors are returned as their message.
func Describe(err error) string {
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, describeField(e))
	}
	return strings.Join(parts, ", ")
}

func describeField(e FieldError) string {
	field := e.Field()
	if ns := e.StructNamespace(); ns != "" {
		segments := strings.Split(ns, ".")
		if len(segments) >= 2 {
			field = strings.ToLower(strings.Join(segments[1:], "."))
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof", "datetime", "required_if":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
