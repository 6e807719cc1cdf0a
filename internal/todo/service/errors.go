package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/todo/pkg/validx"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")

	// ErrMalformedID is returned for ids that cannot exist. It wraps
	// ErrNotFound so callers that only care about absence treat both alike.
	ErrMalformedID = fmt.Errorf("%w: malformed id", ErrNotFound)
)

// ValidationError carries per-field reasons. It matches ErrValidation.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + validx.FieldErrors(e.Details).Error()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalidField(field, reason string) error {
	return &ValidationError{Details: map[string]string{field: reason}}
}

// validate runs struct validation and converts field failures into a
// ValidationError.
func validate(v any) error {
	err := validx.Struct(v)
	if err == nil {
		return nil
	}

	var fe validx.FieldErrors
	if errors.As(err, &fe) {
		return &ValidationError{Details: fe}
	}
	return err
}
