// Package person holds the contact record and the validated value types its
// fields are built from.
package person

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required value was not supplied at all.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidFormat is returned when a supplied value fails its field's
	// format rule.
	ErrInvalidFormat = errors.New("invalid format")
)

// FieldError reports a problem with a single field. Message is the
// field-specific text shown to the user; Err is ErrMissingField or
// ErrInvalidFormat.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string { return e.Message }

func (e *FieldError) Unwrap() error { return e.Err }

func invalid(field, constraints string) error {
	return &FieldError{Field: field, Message: constraints, Err: ErrInvalidFormat}
}

func missing(field string) error {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf("%s field is missing", field),
		Err:     ErrMissingField,
	}
}

// Required builds a value with ctor from raw, distinguishing an absent value
// (raw == nil, reported as ErrMissingField) from a present but invalid one.
func Required[T any](field string, raw *string, ctor func(string) (T, error)) (T, error) {
	if raw == nil {
		var zero T
		return zero, missing(field)
	}
	return ctor(*raw)
}

// FromOptional builds an optional value from raw. A nil raw yields an absent
// Optional; a present value must satisfy ctor.
func FromOptional[T comparable](raw *string, ctor func(string) (T, error)) (Optional[T], error) {
	if raw == nil {
		return None[T](), nil
	}
	v, err := ctor(*raw)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}
