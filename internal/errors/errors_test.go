package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDomainError_Message(t *testing.T) {
	t.Parallel()

	err := NewDomainError("Fibonacci sequence is not defined for negative numbers")
	if err.Error() != "Fibonacci sequence is not defined for negative numbers" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !IsDomainError(err) {
		t.Error("IsDomainError() = false, want true")
	}
}

func TestDomainError_Formatted(t *testing.T) {
	t.Parallel()

	err := NewDomainError("Invalid method '%s'", "bogus")
	if got := err.Error(); got != "Invalid method 'bogus'" {
		t.Errorf("Error() = %q", got)
	}
}

func TestDomainError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	inner := NewDomainError("Number of terms cannot be negative")
	wrapped := WrapError(inner, "assembling sequence")

	if !IsDomainError(wrapped) {
		t.Error("wrapped domain error not detected by IsDomainError")
	}
	var de DomainError
	if !errors.As(wrapped, &de) {
		t.Fatal("errors.As failed on wrapped DomainError")
	}
	if !strings.Contains(de.Message, "negative") {
		t.Errorf("unwrapped message %q does not mention negative", de.Message)
	}
}

func TestResourceExhaustionError(t *testing.T) {
	t.Parallel()

	err := ResourceExhaustionError{Operation: "recursive factorial", Depth: 10000}
	msg := err.Error()
	if !strings.Contains(msg, "recursion depth") {
		t.Errorf("message %q does not mention recursion depth", msg)
	}
	if !strings.Contains(msg, "10000") {
		t.Errorf("message %q does not include the depth limit", msg)
	}
	if !IsExhaustion(err) {
		t.Error("IsExhaustion() = false, want true")
	}
	if IsDomainError(err) {
		t.Error("exhaustion error must not be classified as a domain error")
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("unrecognized method: '%s'", "nope")
	var ce ConfigError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed on ConfigError")
	}
	if ce.Message != "unrecognized method: 'nope'" {
		t.Errorf("unexpected message: %q", ce.Message)
	}
}

func TestWrapError_NilPassthrough(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil, ...) must return nil")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("op: %w", context.Canceled), true},
		{"domain", NewDomainError("nope"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := IsContextError(tc.err); got != tc.want {
			t.Errorf("%s: IsContextError() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHandleComputationError_ExitCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"domain", NewDomainError("Factorial is not defined for negative numbers"), ExitErrorDomain, "negative"},
		{"exhaustion", ResourceExhaustionError{Operation: "recursive factorial", Depth: 10000}, ExitErrorExhaustion, "Resource exhaustion"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "unexpected error"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		code := HandleComputationError(tc.err, &buf, nil)
		if code != tc.wantCode {
			t.Errorf("%s: exit code = %d, want %d", tc.name, code, tc.wantCode)
		}
		if tc.wantText != "" && !strings.Contains(buf.String(), tc.wantText) {
			t.Errorf("%s: output %q does not contain %q", tc.name, buf.String(), tc.wantText)
		}
	}
}
