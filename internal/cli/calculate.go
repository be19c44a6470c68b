package cli

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/fibonacci"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

// RunCalculation executes the one-shot CLI mode: a single F(n), a sequence of
// n terms, or a benchmark comparison, depending on the configuration. It owns
// the spinner lifecycle and the mapping of computation errors to exit codes.
//
// Parameters:
//   - ctx: The context bounding the computation (already carries the timeout).
//   - cfg: The application configuration.
//   - out: The writer for standard output.
//   - errOut: The writer for error messages.
//
// Returns:
//   - int: The process exit code.
func RunCalculation(ctx context.Context, cfg config.AppConfig, out, errOut io.Writer) int {
	method, err := fibonacci.ParseMethod(cfg.Method)
	if err != nil {
		return apperrors.HandleComputationError(err, errOut, ui.CLIColorProvider{})
	}

	if cfg.Benchmark {
		return runBenchmark(ctx, cfg, out, errOut)
	}

	sp := Spinner(noopSpinner{})
	if !cfg.Quiet {
		sp = newSpinner()
		sp.UpdateSuffix(fmt.Sprintf(" Computing F(%d) with the %s method...", cfg.N, method))
	}
	sp.Start()

	gen := fibonacci.NewGenerator()
	outputCfg := OutputConfig{Quiet: cfg.Quiet, Verbose: cfg.Verbose}

	if cfg.SequenceMode {
		start := time.Now()
		seq, err := gen.Sequence(cfg.N, method)
		duration := time.Since(start)
		sp.Stop()
		if err != nil {
			return apperrors.HandleComputationError(err, errOut, ui.CLIColorProvider{})
		}
		DisplaySequence(out, seq, method.String(), duration, outputCfg)
		return apperrors.ExitSuccess
	}

	start := time.Now()
	result, err := gen.Compute(ctx, method, cfg.N)
	duration := time.Since(start)
	sp.Stop()
	if err != nil {
		return apperrors.HandleComputationError(err, errOut, ui.CLIColorProvider{})
	}
	DisplayResult(out, result, cfg.N, method.String(), duration, outputCfg)
	return apperrors.ExitSuccess
}

// runBenchmark times every strategy on the same index and prints a ranked
// comparison table.
func runBenchmark(ctx context.Context, cfg config.AppConfig, out, errOut io.Writer) int {
	results, err := orchestration.CompareMethods(ctx, cfg.N)
	if err != nil {
		return apperrors.HandleComputationError(err, errOut, ui.CLIColorProvider{})
	}
	DisplayComparison(out, results, cfg.N)

	// A benchmark where every strategy rejected the input is a domain error.
	for _, r := range results {
		if !r.Skipped && r.Err == nil {
			return apperrors.ExitSuccess
		}
	}
	return apperrors.ExitErrorDomain
}

// DisplayComparison prints the outcome of a CompareMethods run, fastest
// strategy first.
//
// Parameters:
//   - out: The output writer.
//   - results: The per-method outcomes, already sorted.
//   - n: The index every strategy computed.
func DisplayComparison(out io.Writer, results []orchestration.MethodResult, n int) {
	fmt.Fprintf(out, "\n%sComparison for F(%d):%s\n", ui.ColorBold(), n, ui.ColorReset())
	fmt.Fprintf(out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	var reference *big.Int
	for _, r := range results {
		name := r.Method.String()
		switch {
		case r.Skipped:
			fmt.Fprintf(out, "  %s%-12s%s: %sskipped%s (impractical at this index)\n",
				ui.ColorYellow(), name, ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
		case r.Err != nil:
			fmt.Fprintf(out, "  %s%-12s%s: %sError - %v%s\n",
				ui.ColorYellow(), name, ui.ColorReset(), ui.ColorRed(), r.Err, ui.ColorReset())
		default:
			fmt.Fprintf(out, "  %s%-12s%s: %s%10s%s  (%d digits)\n",
				ui.ColorYellow(), name, ui.ColorReset(),
				ui.ColorGreen(), FormatExecutionDuration(r.Duration), ui.ColorReset(),
				len(r.Value.String()))
			if reference == nil {
				reference = r.Value
			} else if reference.Cmp(r.Value) != 0 {
				fmt.Fprintf(out, "  %sWARNING: %s disagrees with the other strategies%s\n",
					ui.ColorRed(), name, ui.ColorReset())
			}
		}
	}
	fmt.Fprintln(out)
}
