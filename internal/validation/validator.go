// Package validation checks that the fields an operation depends on are
// present before any store call is made.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookshelf/internal/apperr"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Require validates s, whose fields are pointers tagged `validate:"required"`.
// The first absent field is reported as an *apperr.ValidationError named by
// its json tag.
func Require(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return apperr.Missing(fieldErrs[0].Field())
}
