package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// register adds the singleline validation with its message, and label-based field names.
func register(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"singleline",
		validateSingleLine,
		"{0} must not contain line breaks",
	); err != nil {
		return fmt.Errorf("registering singleline validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateSingleLine rejects strings containing a line break.
func validateSingleLine(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}

	return !strings.ContainsAny(field.String(), "\r\n")
}
