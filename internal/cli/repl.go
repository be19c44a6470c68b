// Package cli provides the command-line front ends: the one-shot calculation
// runner, the interactive REPL, and the factorial prompt.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/numcalc/internal/factorial"
	"github.com/agbru/numcalc/internal/fibonacci"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/sysmon"
	"github.com/agbru/numcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultMethod is the strategy used when a command does not name one.
	DefaultMethod fibonacci.Method
	// Timeout is the maximum duration for each computation.
	Timeout time.Duration
}

// REPL represents an interactive calculator session.
type REPL struct {
	config        REPLConfig
	gen           *fibonacci.Generator
	currentMethod fibonacci.Method
	in            io.Reader
	out           io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config:        config,
		gen:           fibonacci.NewGenerator(),
		currentMethod: config.DefaultMethod,
		in:            os.Stdin,
		out:           os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"num> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 Numeric Calculator - Interactive Mode%s              %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssingle <n>%s       - Compute F(n) with the current method\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssequence <n>%s     - Print the first n Fibonacci numbers\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sgenerator <n>%s    - Stream the first n numbers lazily\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbenchmark <n>%s    - Compare all methods for F(n)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfactorial <n>%s    - Compute n! iteratively\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smethod <name>%s    - Change method (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(fibonacci.MethodNames(), ", "))
	fmt.Fprintf(r.out, "  %sstatus%s           - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s      - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "single", "calc", "c":
		r.cmdSingle(args)
	case "sequence", "seq":
		r.cmdSequence(args)
	case "generator", "gen", "g":
		r.cmdGenerator(args)
	case "benchmark", "bench", "cmp":
		r.cmdBenchmark(args)
	case "factorial", "fact", "f":
		r.cmdFactorial(args)
	case "method", "m":
		r.cmdMethod(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Try to interpret as a number for quick calculation
		if n, err := strconv.Atoi(cmd); err == nil {
			r.calculate(n)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// parseIndexArg parses the first argument as an integer, printing a usage
// line when it is missing or malformed.
func (r *REPL) parseIndexArg(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: %s%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return 0, false
	}
	return n, true
}

// cmdSingle handles the "single" command.
func (r *REPL) cmdSingle(args []string) {
	n, ok := r.parseIndexArg(args, "single <n>")
	if !ok {
		return
	}
	r.calculate(n)
}

// calculate performs a Fibonacci calculation with the current method.
func (r *REPL) calculate(n int) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Computing F(%s%d%s) with %s%s%s...\n",
		ui.ColorMagenta(), n, ui.ColorReset(),
		ui.ColorCyan(), r.currentMethod, ui.ColorReset())

	start := time.Now()
	result, err := r.gen.Compute(ctx, r.currentMethod, n)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	DisplayResult(r.out, result, n, r.currentMethod.String(), duration, OutputConfig{})
	fmt.Fprintln(r.out)
}

// cmdSequence handles the "sequence" command.
func (r *REPL) cmdSequence(args []string) {
	count, ok := r.parseIndexArg(args, "sequence <n>")
	if !ok {
		return
	}

	start := time.Now()
	seq, err := r.gen.Sequence(count, r.currentMethod)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplaySequence(r.out, seq, r.currentMethod.String(), duration, OutputConfig{})
	fmt.Fprintln(r.out)
}

// cmdGenerator handles the "generator" command: terms are produced and
// printed one at a time, demonstrating the lazy stream.
func (r *REPL) cmdGenerator(args []string) {
	count, ok := r.parseIndexArg(args, "generator <n>")
	if !ok {
		return
	}

	stream, err := r.gen.Stream(count)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	i := 0
	for {
		v, ok := stream.Next()
		if !ok {
			break
		}
		fmt.Fprintf(r.out, "  F(%s%d%s) = %s%s%s\n",
			ui.ColorMagenta(), i, ui.ColorReset(),
			ui.ColorGreen(), FormatWithSeparators(v), ui.ColorReset())
		i++
	}
	fmt.Fprintln(r.out)
}

// cmdBenchmark handles the "benchmark" command.
func (r *REPL) cmdBenchmark(args []string) {
	n, ok := r.parseIndexArg(args, "benchmark <n>")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	results, err := orchestration.CompareMethods(ctx, n)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayComparison(r.out, results, n)
}

// cmdFactorial handles the "factorial" command.
func (r *REPL) cmdFactorial(args []string) {
	n, ok := r.parseIndexArg(args, "factorial <n>")
	if !ok {
		return
	}

	start := time.Now()
	result, err := factorial.Iterative(n)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	s := result.String()
	if len(s) > TruncationLimit {
		s = truncateDigits(s) + " (truncated)"
	} else {
		s = FormatWithSeparators(result)
	}
	fmt.Fprintf(r.out, "  %d! = %s%s%s (%s)\n\n", n, ui.ColorGreen(), s, ui.ColorReset(), FormatExecutionDuration(duration))
}

// cmdMethod handles the "method" command.
func (r *REPL) cmdMethod(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: method <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available methods: %s\n", strings.Join(fibonacci.MethodNames(), ", "))
		return
	}

	m, err := fibonacci.ParseMethod(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	r.currentMethod = m
	fmt.Fprintf(r.out, "Method changed to: %s%s%s\n", ui.ColorGreen(), m, ui.ColorReset())
}

// cmdStatus displays the current REPL configuration and resource usage.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Method:  %s%s%s\n", ui.ColorCyan(), r.currentMethod, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout: %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Cached:  %s%d%s memoized entries\n", ui.ColorCyan(), r.gen.CacheLen(), ui.ColorReset())

	sys := sysmon.Sample()
	proc := sysmon.SampleProcess()
	fmt.Fprintf(r.out, "  System:  CPU %s%.1f%%%s, memory %s%.1f%%%s\n",
		ui.ColorCyan(), sys.CPUPercent, ui.ColorReset(),
		ui.ColorCyan(), sys.MemPercent, ui.ColorReset())
	fmt.Fprintf(r.out, "  Process: heap %s%.1f MiB%s, %s%d%s goroutines\n",
		ui.ColorCyan(), float64(proc.HeapAllocBytes)/(1024*1024), ui.ColorReset(),
		ui.ColorCyan(), proc.Goroutines, ui.ColorReset())
}
