// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad   Op = "load input config"
	OpPresetLookup Op = "find preset"

	// Mapping files
	OpLayoutRead  Op = "read mapping file"
	OpLayoutWrite Op = "write mapping file"

	// Player mappings
	OpMigrate Op = "migrate legacy mappings"

	// Command line
	OpParseArgs Op = "parse arguments"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// OpError is a failure of an operation on an optional subject.
type OpError struct {
	Op      Op
	Context string
	Err     error
}

func (e *OpError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Context, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Message returns the user-facing message of err. Operation failures are
// written with FormatWith, anything else as is.
func Message(err error) string {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return FormatWith(opErr.Op, opErr.Context, opErr.Err)
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Error wraps err with the failed operation. The result still matches err
// with errors.Is.
func Error(op Op, err error) error {
	return ErrorWith(op, "", err)
}

// ErrorWith wraps err with the failed operation and its subject.
func ErrorWith(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Context: context, Err: err}
}
