// Package errors is the error toolkit of the persistence layer: stack-carrying
// wrapping from pkg/errors plus typed matching for driver errors such as *pgconn.PgError.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error with no stack attached.
func New(text string) error {
	return stderrors.New(text)
}

// Is walks err's chain, including domain errors that match by business code.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As stores the first error in err's chain assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap records the caller's stack and prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}
