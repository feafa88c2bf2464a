package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transit-router/config"
)

func TestInitLogging_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogging(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)

	logger.Debug("graph built", "vertices", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected a JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "graph built" {
		t.Errorf("expected msg 'graph built', got %v", rec["msg"])
	}
	if rec["vertices"] != float64(3) {
		t.Errorf("expected vertices=3, got %v", rec["vertices"])
	}
}

func TestInitLogging_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogging(config.LoggingConfig{Level: "warn"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=kept") {
		t.Errorf("expected text record for warn, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.expected {
			t.Errorf("parseLevel(%q): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}
