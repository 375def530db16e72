package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommandFormat is returned when a command's arguments do not
	// match its usage. The error text includes the usage.
	ErrInvalidCommandFormat = errors.New("invalid command format")

	// ErrDuplicateArgument is returned when a single-valued prefix is given
	// more than once.
	ErrDuplicateArgument = errors.New("multiple values specified for the following single-valued field(s)")

	// ErrConflictingClear is returned when an edit clears a multi-valued
	// field and also changes it in some other way.
	ErrConflictingClear = errors.New("a field that is cleared cannot be edited again in the same command")

	// ErrInvalidIndex is returned for an index that is not a positive integer.
	ErrInvalidIndex = errors.New("index is not a non-zero unsigned integer")

	// ErrUnknownCommand is returned for an unrecognised command word.
	ErrUnknownCommand = errors.New("unknown command")
)

func formatError(reason, usage string) error {
	return fmt.Errorf("%w: %s\n%s", ErrInvalidCommandFormat, reason, usage)
}
