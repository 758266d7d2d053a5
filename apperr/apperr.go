// Package apperr classifies failures so transport code can map them to
// responses without inspecting storage internals.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or semantically invalid input.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks a reference to a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDependency marks an unexpected failure of the record store.
	ErrDependency = errors.New("record store failure")
)

// Validationf builds an error matching ErrValidation under errors.Is.
func Validationf(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

// NotFoundf builds an error matching ErrNotFound under errors.Is.
func NotFoundf(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

// Dependencyf builds an error matching ErrDependency under errors.Is.
func Dependencyf(format string, args ...any) error {
	return wrap(ErrDependency, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
