package errors

import (
	"errors"
	"strings"
)

type MultiError interface {
	List() []error
	Size() int
	Add(error)
	Error() string
	Unwrap() []error
}

func NewMultiError() MultiError {
	return &multiError{
		errors: make([]error, 0),
	}
}

// ErrorOrNil returns nil for a nil or empty MultiError so callers can
// return the aggregate directly.
func ErrorOrNil(e MultiError) error {
	if e == nil || e.Size() == 0 {
		return nil
	}
	return e
}

type multiError struct {
	errors []error
}

func (e *multiError) Size() int {
	return len(e.errors)
}

func (e *multiError) List() []error {
	return e.errors
}

func (e *multiError) Add(err error) {
	if err == nil {
		return
	}
	e.errors = append(e.errors, err)
}

func (e *multiError) Unwrap() []error {
	return e.errors
}

func (e *multiError) Error() string {
	var builder strings.Builder
	for i, err := range e.errors {
		if i > 0 {
			builder.WriteRune('\n')
		}
		builder.WriteString(err.Error())
	}
	return builder.String()
}

// Is, As and New are re-exported so callers importing this package under
// the name errors keep the standard helpers.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func New(msg string) error {
	return errors.New(msg)
}
