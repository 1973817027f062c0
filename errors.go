package scrub

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies an [Error].
type Kind string

const (
	// KindTypeError means the primary argument has the wrong shape,
	// e.g. a scalar passed where an object was expected.
	KindTypeError Kind = "type_error"
	// KindMissingArgument means a required argument was empty.
	KindMissingArgument Kind = "missing_argument"
	// KindInvalidType means a secondary argument is not acceptable,
	// e.g. a type name that names no known category.
	KindInvalidType Kind = "invalid_type"
)

// Error is returned by every operation in this package. Err carries the
// ozzo-validation code and message describing the failure.
type Error struct {
	Kind Kind
	Err  validation.Error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrMissingArgument) matches regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrTypeMismatch is returned when the object to clean is not a map or slice.
	ErrTypeMismatch = &Error{
		Kind: KindTypeError,
		Err:  validation.NewError("scrub_type_error", "object must be a map[string]any or []any"),
	}
	// ErrMissingArgument is returned when a required argument is empty.
	ErrMissingArgument = &Error{
		Kind: KindMissingArgument,
		Err:  validation.NewError("scrub_missing_argument", "argument not provided"),
	}
	// ErrInvalidType is returned when a type name is not recognized.
	ErrInvalidType = &Error{
		Kind: KindInvalidType,
		Err:  validation.NewError("scrub_invalid_type", "unknown type name"),
	}
)

// KindOf returns the kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// argumentError converts the result of an ozzo rule check into an *Error of
// the given kind, keeping the rule's code and message.
func argumentError(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var ve validation.Error
	if !errors.As(err, &ve) {
		ve = validation.NewError("scrub_internal", err.Error())
	}
	return &Error{Kind: kind, Err: ve}
}
