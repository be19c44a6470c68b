// Package config provides the configuration management for the numcalc
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/fibonacci"
)

const (
	// EnvPrefix is the prefix for all environment variables used by numcalc.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "NUMCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultN is the default Fibonacci index (or sequence length) to compute.
	DefaultN = 10
	// DefaultTimeout is the default computation timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
)

// SequenceKeyword is the positional argument that switches the CLI into
// sequence mode: `numcalc 20 sequence` prints the first 20 terms instead of
// the single value F(20).
const SequenceKeyword = "sequence"

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags, positional arguments, and environment variables.
type AppConfig struct {
	// N is the Fibonacci index to compute, or the number of terms when
	// SequenceMode is set.
	N int
	// Method selects the computation strategy by name
	// ("iterative", "recursive", "memoized", "generator").
	Method string
	// SequenceMode, if true, computes the first N terms instead of F(N).
	SequenceMode bool
	// Benchmark, if true, times every strategy on the same index and
	// reports a comparison instead of a single result.
	Benchmark bool
	// Timeout sets the maximum duration for the computation.
	Timeout time.Duration
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses banners, spinners, and informational messages.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Interactive, if true, starts the application in REPL mode.
	Interactive bool
	// Factorial, if true, runs the interactive factorial prompt instead of
	// the Fibonacci front end.
	Factorial bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// TUI, if true, launches the terminal dashboard.
	TUI bool
}

// Validate checks the semantic consistency of the configuration parameters.
// Structural problems (a non-positive timeout, an unparseable port, an
// unrecognized method name) are rejected here; domain problems such as a
// negative index are deliberately left to the computation layer so they
// surface through the regular error taxonomy.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Method != "" {
		if _, err := fibonacci.ParseMethod(c.Method); err != nil {
			return apperrors.NewConfigError("%s", err.Error())
		}
	}
	if c.ServerMode {
		port, err := strconv.Atoi(c.Port)
		if err != nil || port < 1 || port > 65535 {
			return apperrors.NewConfigError("invalid port: '%s'", c.Port)
		}
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// handles positional arguments, and applies environment variable overrides
// before validating the resulting configuration.
//
// Positional arguments follow the flags:
//
//	numcalc [flags] <n> [method|sequence]
//
// The first positional argument is the index (or term count); the second is
// either a method name or the literal "sequence".
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	methodHelp := fmt.Sprintf("Computation method: one of [%s].", strings.Join(fibonacci.MethodNames(), ", "))

	config := AppConfig{}
	fs.IntVar(&config.N, "n", DefaultN, "Index n of the Fibonacci number (or number of terms with -sequence).")
	fs.StringVar(&config.Method, "method", fibonacci.DefaultMethod.String(), methodHelp)
	fs.StringVar(&config.Method, "m", fibonacci.DefaultMethod.String(), "Computation method (shorthand).")
	fs.BoolVar(&config.SequenceMode, "sequence", false, "Compute the first n terms instead of the single value F(n).")
	fs.BoolVar(&config.Benchmark, "benchmark", false, "Time every method on the same index and report a comparison.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the computation.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Enable verbose (debug) logging.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.Interactive, "i", false, "Interactive mode (shorthand).")
	fs.BoolVar(&config.Factorial, "factorial", false, "Run the interactive factorial prompt.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the terminal dashboard.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	if err := applyPositionalArgs(&config, fs); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}

	config.Method = strings.ToLower(config.Method)
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

// applyPositionalArgs interprets the non-flag arguments. Positional values
// take precedence over the corresponding flags and environment variables
// since they are the most explicit form of input.
func applyPositionalArgs(config *AppConfig, fs *flag.FlagSet) error {
	rest := fs.Args()
	if len(rest) == 0 {
		return nil
	}
	if len(rest) > 2 {
		return apperrors.NewConfigError("too many arguments: %s", strings.Join(rest, " "))
	}

	n, err := strconv.Atoi(rest[0])
	if err != nil {
		return apperrors.NewConfigError("invalid index: '%s' is not an integer", rest[0])
	}
	config.N = n

	if len(rest) == 2 {
		if strings.EqualFold(rest[1], SequenceKeyword) {
			config.SequenceMode = true
		} else {
			config.Method = rest[1]
		}
	}
	return nil
}
