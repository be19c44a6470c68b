package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/ui"
)

func quietConfig(n int, method string) config.AppConfig {
	return config.AppConfig{
		N:       n,
		Method:  method,
		Timeout: time.Minute,
		Quiet:   true,
	}
}

func TestRunCalculation_Single(t *testing.T) {
	ui.InitTheme(true)

	var out, errOut strings.Builder
	code := RunCalculation(context.Background(), quietConfig(10, "iterative"), &out, &errOut)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, apperrors.ExitSuccess, errOut.String())
	}
	if out.String() != "55\n" {
		t.Errorf("output = %q, want %q", out.String(), "55\n")
	}
}

func TestRunCalculation_Sequence(t *testing.T) {
	ui.InitTheme(true)

	cfg := quietConfig(5, "generator")
	cfg.SequenceMode = true

	var out, errOut strings.Builder
	code := RunCalculation(context.Background(), cfg, &out, &errOut)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, errOut.String())
	}
	if out.String() != "0\n1\n1\n2\n3\n" {
		t.Errorf("sequence output = %q", out.String())
	}
}

func TestRunCalculation_NegativeIndex(t *testing.T) {
	ui.InitTheme(true)

	var out, errOut strings.Builder
	code := RunCalculation(context.Background(), quietConfig(-1, "iterative"), &out, &errOut)
	if code != apperrors.ExitErrorDomain {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorDomain)
	}
	if !strings.Contains(errOut.String(), "negative") {
		t.Errorf("error output %q does not mention 'negative'", errOut.String())
	}
}

func TestRunCalculation_InvalidMethod(t *testing.T) {
	ui.InitTheme(true)

	var out, errOut strings.Builder
	code := RunCalculation(context.Background(), quietConfig(10, "bogus"), &out, &errOut)
	if code != apperrors.ExitErrorDomain {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorDomain)
	}
	if !strings.Contains(errOut.String(), "Invalid method") {
		t.Errorf("error output %q does not mention 'Invalid method'", errOut.String())
	}
}

func TestRunCalculation_RecursiveSequenceRefusal(t *testing.T) {
	ui.InitTheme(true)

	cfg := quietConfig(50, "recursive")
	cfg.SequenceMode = true

	var out, errOut strings.Builder
	code := RunCalculation(context.Background(), cfg, &out, &errOut)
	if code != apperrors.ExitErrorDomain {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorDomain)
	}
	if !strings.Contains(errOut.String(), "too slow") {
		t.Errorf("error output %q does not explain the refusal", errOut.String())
	}
}

func TestRunCalculation_Canceled(t *testing.T) {
	ui.InitTheme(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut strings.Builder
	code := RunCalculation(ctx, quietConfig(10, "iterative"), &out, &errOut)
	if code != apperrors.ExitErrorCanceled {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRunCalculation_Benchmark(t *testing.T) {
	ui.InitTheme(true)

	cfg := quietConfig(20, "iterative")
	cfg.Benchmark = true

	var out, errOut strings.Builder
	code := RunCalculation(context.Background(), cfg, &out, &errOut)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, errOut.String())
	}
	s := out.String()
	if !strings.Contains(s, "Comparison for F(20)") {
		t.Errorf("benchmark output missing header:\n%s", s)
	}
	for _, name := range []string{"iterative", "recursive", "memoized", "generator"} {
		if !strings.Contains(s, name) {
			t.Errorf("benchmark output missing method %q:\n%s", name, s)
		}
	}
}

func TestRunCalculation_BenchmarkAllRejected(t *testing.T) {
	ui.InitTheme(true)

	cfg := quietConfig(-5, "iterative")
	cfg.Benchmark = true

	var out, errOut strings.Builder
	code := RunCalculation(context.Background(), cfg, &out, &errOut)
	if code != apperrors.ExitErrorDomain {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorDomain)
	}
}
