package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess         = 0   // Indicates successful execution.
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorDomain     = 2   // Indicates the input was rejected as semantically invalid.
	ExitErrorExhaustion = 3   // Indicates a recursion depth limit was exceeded.
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorCanceled   = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// DomainError represents a rejection of input that is structurally valid but
// semantically out of range or unrecognized: a negative index, a negative
// sequence count, or an unknown method name. It is always caught at the
// application boundary and reported as a message, never propagated as a crash.
type DomainError struct {
	// Message explains why the input was rejected.
	Message string
}

// Error returns the error message for a DomainError.
//
// Returns:
//   - string: The error message string.
func (e DomainError) Error() string { return e.Message }

// NewDomainError creates a new DomainError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new DomainError instance containing the formatted message.
func NewDomainError(format string, a ...any) error {
	return DomainError{Message: fmt.Sprintf(format, a...)}
}

// ResourceExhaustionError reports that a recursive computation exceeded the
// permitted call depth. It is reported distinctly from a DomainError: the
// input itself was valid, and the caller may retry with an iterative strategy.
type ResourceExhaustionError struct {
	// Operation is the name of the computation that exhausted its depth budget.
	Operation string
	// Depth is the call depth limit that was exceeded.
	Depth int
}

// Error returns a formatted message describing the exhaustion.
//
// Returns:
//   - string: The error message string.
func (e ResourceExhaustionError) Error() string {
	return fmt.Sprintf("%s exceeded the maximum recursion depth of %d; retry with an iterative method", e.Operation, e.Depth)
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input on the command line.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
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

// IsDomainError checks if the error is (or wraps) a DomainError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a DomainError.
func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}

// IsExhaustion checks if the error is (or wraps) a ResourceExhaustionError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a ResourceExhaustionError.
func IsExhaustion(err error) bool {
	var re ResourceExhaustionError
	return errors.As(err, &re)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
