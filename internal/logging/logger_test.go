package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// decodeLine unmarshals a single JSON log line for inspection.
func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line is not valid JSON: %v (line: %q)", err, line)
	}
	return m
}

func TestNewLogger_ComponentField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "fibonacci")
	logger.Info("sequence assembled", Int("count", 15))

	m := decodeLine(t, &buf)
	if m["component"] != "fibonacci" {
		t.Errorf("component = %v, want fibonacci", m["component"])
	}
	if m["message"] != "sequence assembled" {
		t.Errorf("message = %v", m["message"])
	}
	if m["count"] != float64(15) {
		t.Errorf("count = %v, want 15", m["count"])
	}
}

func TestLogger_ErrorIncludesError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "factorial")
	logger.Error("computation failed", errors.New("depth exceeded"))

	m := decodeLine(t, &buf)
	if m["level"] != "error" {
		t.Errorf("level = %v, want error", m["level"])
	}
	if m["error"] != "depth exceeded" {
		t.Errorf("error = %v, want depth exceeded", m["error"])
	}
}

func TestLogger_FieldTypes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	logger.Info("fields",
		String("method", "memoized"),
		Int("n", 42),
	)

	m := decodeLine(t, &buf)
	if m["method"] != "memoized" {
		t.Errorf("method = %v", m["method"])
	}
	if m["n"] != float64(42) {
		t.Errorf("n = %v", m["n"])
	}
}
