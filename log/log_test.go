package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMakeJSONOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"))
	logger.Info("hello", slog.String("key", "value"))

	var record map[string]any

	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if record["msg"] != "hello" {
		t.Errorf("expected msg=hello, got %v", record["msg"])
	}

	if record["key"] != "value" {
		t.Errorf("expected key=value, got %v", record["key"])
	}

	if record["level"] != "INFO" {
		t.Errorf("expected level=INFO, got %v", record["level"])
	}

	if _, ok := record["time"]; ok {
		t.Error("expected no time field with layout none")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn), WithFormat(FormatText))

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("messages below warn should be discarded:\n%s", out)
	}

	if !strings.Contains(out, "kept") {
		t.Errorf("warn message should be written:\n%s", out)
	}
}

func TestTraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatText),
		WithTimeLayout("none"),
	)
	logger.Trace("deep detail")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level name, got:\n%s", buf.String())
	}
}

func TestZeroValueLoggerIsSilent(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("nothing")
	logger.Error("nothing")

	if logger.Level() != DefaultLevel {
		t.Errorf("zero logger level = %v, want %v", logger.Level(), DefaultLevel)
	}
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"))
	logger = logger.With(slog.String("component", "resolver"))
	logger.Info("tagged")

	var record map[string]any

	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if record["component"] != "resolver" {
		t.Errorf("expected component attr, got %v", record)
	}
}

func TestWrapOverrides(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))
	if logger.Level() != LevelError {
		t.Fatalf("expected error level, got %v", logger.Level())
	}

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	if wrapped.Level() != LevelDebug {
		t.Errorf("expected wrapped debug level, got %v", wrapped.Level())
	}

	// Original is unchanged.
	if logger.Level() != LevelError {
		t.Errorf("original logger mutated: %v", logger.Level())
	}
}

func TestPrettyOutputContainsMessage(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	)
	logger.Info("styled output", slog.Int("count", 3))

	out := buf.String()
	if !strings.Contains(out, "styled output") {
		t.Errorf("expected message in pretty output:\n%s", out)
	}

	if !strings.Contains(out, "count") {
		t.Errorf("expected attr key in pretty output:\n%s", out)
	}
}
