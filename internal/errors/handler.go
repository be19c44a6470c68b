package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with the cli package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleComputationError formats and prints an error message for a failed
// computation. It distinguishes between the error kinds of the taxonomy
// (domain rejection, resource exhaustion, cancellation, generic) so the user
// receives specific feedback and the process exits with the matching code.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the error message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleComputationError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	var de DomainError
	if errors.As(err, &de) {
		fmt.Fprintf(out, "%sError: %s%s\n", colors.Red(), de.Message, colors.Reset())
		return ExitErrorDomain
	}

	var re ResourceExhaustionError
	if errors.As(err, &re) {
		fmt.Fprintf(out, "%sResource exhaustion: %v%s\n", colors.Yellow(), re, colors.Reset())
		return ExitErrorExhaustion
	}

	if IsContextError(err) {
		fmt.Fprintf(out, "%sStatus: Canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	}

	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
