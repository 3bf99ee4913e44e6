package log

import (
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{" TEXT ", FormatText},
		{"yaml", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseFormat(tt.input)
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelTrace.String() != "trace" {
		t.Errorf("LevelTrace.String() = %q", LevelTrace.String())
	}

	if LevelError.String() != "error" {
		t.Errorf("LevelError.String() = %q", LevelError.String())
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	named := makeFormatTimeFunc("RFC3339")
	if got := named(ts); got != ts.Format(time.RFC3339) {
		t.Errorf("named layout = %q", got)
	}

	custom := makeFormatTimeFunc("2006-01-02")
	if got := custom(ts); got != "2026-01-02" {
		t.Errorf("custom layout = %q", got)
	}

	disabled := makeFormatTimeFunc("none")
	if got := disabled(ts); got != "" {
		t.Errorf("disabled layout = %q", got)
	}

	empty := makeFormatTimeFunc("   ")
	if got := empty(ts); got != "" {
		t.Errorf("empty layout = %q", got)
	}
}

func TestLevelsIncludesAll(t *testing.T) {
	seen := map[string]bool{}
	for name := range Levels() {
		seen[name] = true
	}

	for _, want := range []string{"trace", "debug", "info", "warn", "error"} {
		if !seen[want] {
			t.Errorf("Levels() missing %q", want)
		}
	}
}
