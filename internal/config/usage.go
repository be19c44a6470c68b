package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/numcalc/internal/ui"
)

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// Respect NO_COLOR even before app initialization
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()

		// Header
		fmt.Fprintf(out, "\n%sNumeric Calculator%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Fibonacci and factorial calculator with selectable strategies.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] <n> [method|sequence]\n\n%sFlags:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}

			// Print formatted flag
			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, flagSig, t.Reset, usage)

			// Print default value if meaningful
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)

		fmt.Fprintf(out, "%sExamples:%s\n", t.Warning, t.Reset)
		fmt.Fprintf(out, "  %s 30                  Compute F(30) iteratively\n", fs.Name())
		fmt.Fprintf(out, "  %s 30 memoized         Compute F(30) with the memoized strategy\n", fs.Name())
		fmt.Fprintf(out, "  %s 20 sequence         Print the first 20 Fibonacci numbers\n", fs.Name())
		fmt.Fprintf(out, "  %s -interactive        Start the REPL\n", fs.Name())
		fmt.Fprintf(out, "  %s -factorial          Start the factorial prompt\n", fs.Name())
		fmt.Fprintln(out)
	}
}
