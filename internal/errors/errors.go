package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorTaskCrash = 5   // Indicates that at least one task terminated abnormally.
	ExitErrorCanceled  = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// TaskPanicError records a unit of work that panicked instead of returning.
// It is produced at the task boundary by recover() and never escapes the
// collector as a panic again.
type TaskPanicError struct {
	// Endpoint identifies the task that crashed.
	Endpoint string
	// Value is the value passed to panic.
	Value any
	// Stack is the goroutine stack captured at recovery time.
	Stack []byte
}

// Error returns a formatted message describing the crash.
func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("task %q panicked: %v", e.Endpoint, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *TaskPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsTaskPanic reports whether err carries a TaskPanicError.
func IsTaskPanic(err error) bool {
	var panicErr *TaskPanicError
	return errors.As(err, &panicErr)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check. Wrapped errors are unwrapped.
//
// Returns:
//   - bool: True if err is or wraps context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeForRun maps the outcome of a completed run to a process exit code.
// Typed fetch failures are ordinary simulated outcomes and never change the
// exit code; crashes do, and a canceled run takes precedence over both.
//
// Parameters:
//   - crashed: The number of tasks that ended with an unexpected error.
//   - runErr: The error that ended the run early, or nil.
//
// Returns:
//   - int: ExitErrorCanceled if runErr is a context error, ExitErrorTaskCrash
//     if crashed is positive, otherwise ExitSuccess.
func ExitCodeForRun(crashed int, runErr error) int {
	switch {
	case IsContextError(runErr):
		return ExitErrorCanceled
	case crashed > 0:
		return ExitErrorTaskCrash
	default:
		return ExitSuccess
	}
}
