package cli

import (
	"errors"
	"fmt"
)

// ExitStatusError ends a command with a non-zero exit code without printing
// anything. Commands that answer yes/no through their exit status, such as
// exists and can-run, return it for the negative answer.
type ExitStatusError struct {
	// Code is the process exit code.
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Is allows errors.Is() to match any ExitStatusError.
func (e *ExitStatusError) Is(target error) bool {
	_, ok := target.(*ExitStatusError)
	return ok
}

// NewExitStatusError creates an ExitStatusError with the given code.
func NewExitStatusError(code int) *ExitStatusError {
	return &ExitStatusError{Code: code}
}

// IsSilent reports whether err should end the process without an error
// message.
func IsSilent(err error) bool {
	var exitErr *ExitStatusError
	return errors.As(err, &exitErr)
}

// InvalidFieldError reports a --field or --fields name that the records do
// not carry.
type InvalidFieldError struct {
	// Field is the unknown field name.
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("Invalid field: %s.", e.Field)
}

// Is allows errors.Is() to match any InvalidFieldError.
func (e *InvalidFieldError) Is(target error) bool {
	_, ok := target.(*InvalidFieldError)
	return ok
}
