// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request bodies using struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with the default tag set.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return field + " must be one of [" + fieldErr.Param() + "]"
	case "min":
		return field + " must be at least " + fieldErr.Param()
	case "max":
		return field + " must be at most " + fieldErr.Param()
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	default:
		return field + " failed on " + fieldErr.Tag()
	}
}
