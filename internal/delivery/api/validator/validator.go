// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"billing/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// FieldErrors lists one message per failed field, in struct order.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

// Validator validates bound request structs by their `validate` tags.
type Validator struct {
	validate *playground.Validate
}

// New returns a validator that reports fields by their json names.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make(FieldErrors, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return messages
}

func describe(fieldErr playground.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fieldErr.Tag())
	}
}
