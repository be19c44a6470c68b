// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplaySequence], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatWithSeparators], [FormatExecutionDuration].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/agbru/numcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Quiet mode suppresses everything except the raw value(s).
	Quiet bool
	// Verbose shows the full result value even past the truncation limit.
	Verbose bool
}

// FormatWithSeparators renders a big integer with thousands separators, e.g.
// 832040 becomes "832,040". Values past the truncation limit are rendered
// without separators since they get truncated anyway.
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The digit string with comma separators inserted.
func FormatWithSeparators(v *big.Int) string {
	s := v.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 || len(s) > TruncationLimit {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// truncateDigits shortens a digit string past the truncation limit, keeping
// DisplayEdges digits at each end.
func truncateDigits(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s", s[:DisplayEdges], s[len(s)-DisplayEdges:])
}

// DisplayQuietResult outputs a result in quiet mode: the raw value, nothing
// else. Suitable for scripting.
//
// Parameters:
//   - out: The output writer.
//   - result: The calculated value.
func DisplayQuietResult(out io.Writer, result *big.Int) {
	fmt.Fprintln(out, result.String())
}

// DisplayResult displays a single computed value with its metadata: index,
// method, digit count, and duration. Values longer than the truncation limit
// are shortened unless verbose output is requested.
//
// Parameters:
//   - out: The output writer.
//   - result: The calculated Fibonacci number.
//   - n: The index.
//   - method: The name of the strategy used.
//   - duration: The computation duration.
//   - cfg: Output configuration.
func DisplayResult(out io.Writer, result *big.Int, n int, method string, duration time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		DisplayQuietResult(out, result)
		return
	}

	digits := len(result.String())
	fmt.Fprintf(out, "%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Method: %s%s%s\n", ui.ColorCyan(), method, ui.ColorReset())
	fmt.Fprintf(out, "  Time:   %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "  Digits: %s%d%s\n", ui.ColorCyan(), digits, ui.ColorReset())

	value := result.String()
	if digits > TruncationLimit && !cfg.Verbose {
		fmt.Fprintf(out, "  F(%d) = %s%s%s (truncated)\n", n, ui.ColorGreen(), truncateDigits(value), ui.ColorReset())
	} else if digits <= TruncationLimit {
		fmt.Fprintf(out, "  F(%d) = %s%s%s\n", n, ui.ColorGreen(), FormatWithSeparators(result), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "  F(%d) = %s%s%s\n", n, ui.ColorGreen(), value, ui.ColorReset())
	}
}

// DisplaySequence prints a sequence of values in rows, SequenceRowWidth terms
// per line, with thousands separators on small terms. In quiet mode each term
// is printed on its own line without decoration.
//
// Parameters:
//   - out: The output writer.
//   - seq: The sequence terms in order.
//   - method: The name of the strategy used.
//   - duration: The computation duration.
//   - cfg: Output configuration.
func DisplaySequence(out io.Writer, seq []*big.Int, method string, duration time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		for _, v := range seq {
			fmt.Fprintln(out, v.String())
		}
		return
	}

	fmt.Fprintf(out, "%sFirst %d Fibonacci numbers%s (%s%s%s, %s):\n",
		ui.ColorBold(), len(seq), ui.ColorReset(),
		ui.ColorCyan(), method, ui.ColorReset(),
		FormatExecutionDuration(duration))

	for i, v := range seq {
		s := v.String()
		if len(s) <= TruncationLimit {
			s = FormatWithSeparators(v)
		} else {
			s = truncateDigits(s)
		}
		fmt.Fprintf(out, "%s", s)
		if (i+1)%SequenceRowWidth == 0 || i == len(seq)-1 {
			fmt.Fprintln(out)
		} else {
			fmt.Fprint(out, "  ")
		}
	}
}
