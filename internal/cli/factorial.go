package cli

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/factorial"
	"github.com/agbru/numcalc/internal/ui"
)

// quitInput ends the factorial prompt loop.
const quitInput = "q"

// RunFactorialPrompt runs the interactive factorial front end: the user is
// prompted for a non-negative integer (or 'q' to quit) and both strategies
// are computed side by side on every input. The recursive side reports depth
// exhaustion distinctly while the iterative result still prints, so the
// comparison itself demonstrates the retry path. Ctrl+C and Ctrl+D also end
// the session.
//
// Parameters:
//   - out: The writer for results and error messages.
//
// Returns:
//   - int: The process exit code.
func RunFactorialPrompt(out io.Writer) int {
	fmt.Fprintf(out, "\n%sFactorial Calculator%s (enter a non-negative integer, or '%s' to quit)\n\n",
		ui.ColorBold(), ui.ColorReset(), quitInput)

	for {
		operandPrompt := promptui.Prompt{
			Label:    "Number",
			Validate: validateFactorialInput,
		}
		raw, err := operandPrompt.Run()
		if err != nil {
			if isPromptExit(err) {
				fmt.Fprintln(out, "Goodbye!")
				return apperrors.ExitSuccess
			}
			fmt.Fprintf(out, "%sPrompt error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return apperrors.ExitErrorGeneric
		}

		trimmed := strings.TrimSpace(raw)
		if strings.EqualFold(trimmed, quitInput) {
			fmt.Fprintln(out, "Goodbye!")
			return apperrors.ExitSuccess
		}
		n, _ := strconv.Atoi(trimmed)
		computeFactorial(out, n)
	}
}

// validateFactorialInput accepts the quit keyword or a non-negative integer.
func validateFactorialInput(input string) error {
	trimmed := strings.TrimSpace(input)
	if strings.EqualFold(trimmed, quitInput) {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("'%s' is not an integer", input)
	}
	if n < 0 {
		return fmt.Errorf("factorial requires a non-negative integer")
	}
	return nil
}

// computeFactorial runs both strategies on n and prints one line per
// strategy. A recursive failure never suppresses the iterative result.
func computeFactorial(out io.Writer, n int) {
	displayFactorialOutcome(out, n, "iterative", factorial.Iterative)
	displayFactorialOutcome(out, n, "recursive", factorial.Recursive)
	fmt.Fprintln(out)
}

// displayFactorialOutcome times one strategy and prints its result line.
// Exhaustion carries a retry hint; both error kinds stay inline.
func displayFactorialOutcome(out io.Writer, n int, name string, compute func(int) (*big.Int, error)) {
	start := time.Now()
	result, err := compute(n)
	duration := time.Since(start)

	if err != nil {
		if apperrors.IsExhaustion(err) {
			fmt.Fprintf(out, "  %-10s %sResource exhaustion: %v%s\n",
				name, ui.ColorYellow(), err, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "  %-10s %sError: %v%s\n",
				name, ui.ColorRed(), err, ui.ColorReset())
		}
		return
	}

	s := result.String()
	if len(s) > TruncationLimit {
		s = truncateDigits(s) + " (truncated)"
	} else {
		s = FormatWithSeparators(result)
	}
	fmt.Fprintf(out, "  %-10s %d! = %s%s%s (%s, %d digits)\n",
		name, n, ui.ColorGreen(), s, ui.ColorReset(),
		FormatExecutionDuration(duration), len(result.String()))
}

// isPromptExit reports whether the prompt ended by user interrupt or EOF.
func isPromptExit(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
