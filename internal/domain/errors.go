package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by project construction. Match them with errors.Is.
var (
	// ErrType means an attribute has the wrong runtime type for its role.
	ErrType = errors.New("invalid type")
	// ErrValue means an attribute has the right type but is out of range.
	ErrValue = errors.New("invalid value")
)

// FieldError describes which attribute failed validation and why.
type FieldError struct {
	Field  string
	Kind   error // ErrType or ErrValue
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Field, e.Kind, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Kind }

func typeError(field, reason string) error {
	return &FieldError{Field: field, Kind: ErrType, Reason: reason}
}

func valueError(field, reason string) error {
	return &FieldError{Field: field, Kind: ErrValue, Reason: reason}
}
