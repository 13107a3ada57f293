// Package apperr defines the application error type.
package apperr

import "fmt"

// Error is an application error with an optional wrapped cause.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns a copy of the error with the underlying cause attached.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
	}
}
