package cli

import (
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("unknown command")

// UsageError means a command was called incorrectly, and the user should check its usage.
// Any UsageError matches another with [errors.Is], so callers can choose an exit code without inspecting the cause.
type UsageError struct {
	Command string // Command is the key of the sub-command that was misused, if known.
	wrapped error
}

func (e *UsageError) Error() string {
	msg := "usage error"
	if len(e.Command) > 0 {
		msg += " in " + e.Command
	}
	if e.wrapped == nil {
		return msg
	}
	return msg + ": " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError creates a [UsageError], passing format and args to [fmt.Errorf] for the underlying error.
// A [CommandFunc] returning one will have [UsageError.Command] set when it's returned from [CommandSet.Exec].
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}
