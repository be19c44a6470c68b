package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/numcalc/internal/cli"
	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/fibonacci"
	"github.com/agbru/numcalc/internal/server"
	"github.com/agbru/numcalc/internal/tui"
	"github.com/agbru/numcalc/internal/ui"
)

// Application represents the numcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector (typically os.Args).
//   - errWriter: The writer for parse errors and usage output.
//
// Returns:
//   - *Application: The configured application.
//   - error: An error if argument parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "numcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The root context.
//   - out: The writer for standard output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.configureLogging()
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.ServerMode:
		return server.Run(ctx, a.Config, server.VersionInfo(GetVersionInfo()), a.ErrWriter)
	case a.Config.TUI:
		return tui.Run(ctx, a.Config)
	case a.Config.Interactive:
		return a.runREPL()
	case a.Config.Factorial:
		return cli.RunFactorialPrompt(out)
	default:
		ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
		defer cancelTimeout()
		return cli.RunCalculation(ctx, a.Config, out, a.ErrWriter)
	}
}

// runREPL starts the interactive session with the configured defaults.
func (a *Application) runREPL() int {
	method, err := fibonacci.ParseMethod(a.Config.Method)
	if err != nil {
		// Config validation already vetted the method name.
		method = fibonacci.DefaultMethod
	}
	repl := cli.NewREPL(cli.REPLConfig{
		DefaultMethod: method,
		Timeout:       a.Config.Timeout,
	})
	repl.Start()
	return apperrors.ExitSuccess
}

// configureLogging sets the global log level from the configuration:
// verbose wins over quiet, quiet suppresses everything below errors.
func (a *Application) configureLogging() {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
