// Package logging tests for the structured JSON logger.
package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newTestLogger(minLevel Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Logger{out: buf, minLevel: minLevel}, buf
}

// TestLogger_jsonLines verifies each entry is one JSON object per
// line with the expected fields.
func TestLogger_jsonLines(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	l.Info("document saved", map[string]interface{}{"key": "cms-data"})

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, line)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "document saved" {
		t.Errorf("message = %v, want 'document saved'", entry["message"])
	}
	ctx, ok := entry["context"].(map[string]interface{})
	if !ok || ctx["key"] != "cms-data" {
		t.Errorf("context = %v, want key=cms-data", entry["context"])
	}
}

// TestLogger_levelFiltering verifies entries below the minimum level
// are dropped.
func TestLogger_levelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("emitted %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("error entry missing cause: %q", lines[1])
	}
}

// TestParseLevel verifies config strings map to levels with an INFO
// fallback.
func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warn":    LevelWarn,
		"WARNING": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestMergeContext verifies later maps win on key collision.
func TestMergeContext(t *testing.T) {
	merged := mergeContext(
		map[string]interface{}{"a": 1, "b": 1},
		map[string]interface{}{"b": 2},
	)
	if merged["a"] != 1 || merged["b"] != 2 {
		t.Errorf("mergeContext() = %v", merged)
	}

	if mergeContext() != nil {
		t.Error("mergeContext() with no maps should be nil")
	}
}
