package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// requirePositive runs the gt=0 rule against v and reports a ValueKind
// FieldError for field when it fails.
func requirePositive[T int | float64](field string, v T) error {
	err := validate.Var(v, "gt=0")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return valueError(field, "must be a positive number")
	}
	return err
}
