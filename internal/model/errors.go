package model

import (
	"errors"
	"fmt"
)

// Errors returned when a dog cannot be added. Both are recoverable:
// the caller shows a message and lets the user edit the input.
var (
	// ErrBlankName means the trimmed name is empty
	ErrBlankName = errors.New("dog name is blank")

	// ErrDuplicateName means a dog with the same name is already on the list
	ErrDuplicateName = errors.New("dog already exists")
)

// DuplicateNameError wraps ErrDuplicateName with the offending name
func DuplicateNameError(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateName, name)
}

// IsAddError reports whether err is one of the add failure kinds
func IsAddError(err error) bool {
	return errors.Is(err, ErrBlankName) || errors.Is(err, ErrDuplicateName)
}
