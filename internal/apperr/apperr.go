// Package apperr defines the user-facing error type shared across breathe
package apperr

import "fmt"

// Error is an error with a message that may contain formatting verbs which
// are filled in with Fmt.
type Error struct {
	Err     error
	origin  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) root() *Error {
	if e.origin != nil {
		return e.origin
	}

	return e
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	err := *e
	err.Message = fmt.Sprintf(e.Message, args...)
	err.origin = e.root()

	return &err
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	newErr := *e
	newErr.Err = err
	newErr.origin = e.root()

	return &newErr
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error e was derived from through Fmt or
// Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}
