package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the real binary and exercises it end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "numcalc"
	if runtime.GOOS == "windows" {
		binName = "numcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	build := exec.Command("go", "build", "-o", binPath, "./cmd/numcalc")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build numcalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Basic Calculation",
			args:     []string{"30"},
			wantOut:  "F(30) = 832,040",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-q", "10"},
			wantOut:  "55",
			wantCode: 0,
		},
		{
			name:     "Positional Method",
			args:     []string{"-q", "20", "memoized"},
			wantOut:  "6765",
			wantCode: 0,
		},
		{
			name:     "Sequence Mode",
			args:     []string{"-q", "5", "sequence"},
			wantOut:  "3",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version",
			args:     []string{"--version"},
			wantOut:  "numcalc",
			wantCode: 0,
		},
		{
			name:     "Negative Index",
			args:     []string{"-q", "-n=-1"},
			wantOut:  "negative",
			wantCode: 2,
		},
		{
			name:     "Invalid Method",
			args:     []string{"10", "bogus"},
			wantOut:  "invalid method",
			wantCode: 1,
		},
		{
			name:     "Recursive Sequence Refusal",
			args:     []string{"-q", "50", "-sequence", "-method", "recursive"},
			wantOut:  "too slow",
			wantCode: 2,
		},
		{
			name:     "Benchmark",
			args:     []string{"-benchmark", "20"},
			wantOut:  "comparison for f(20)",
			wantCode: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tc.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			exitCode := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run binary: %v", err)
			}

			if exitCode != tc.wantCode {
				t.Errorf("exit code = %d, want %d\noutput:\n%s", exitCode, tc.wantCode, output)
			}
			if tc.wantOut != "" && !strings.Contains(strings.ToLower(string(output)), strings.ToLower(tc.wantOut)) {
				t.Errorf("output does not contain %q:\n%s", tc.wantOut, output)
			}
		})
	}
}
