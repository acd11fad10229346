package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q): expected %s, got %s", raw, want, got)
		}
	}
}

func TestNewLoggerJSONIncludesCommonFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Service: "fm-stats", Version: "dev", Output: &buf})
	logger.Info("loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry[FieldService] != "fm-stats" || entry[FieldVersion] != "dev" {
		t.Fatalf("expected common fields, got %+v", entry)
	}
}

func TestNewLoggerTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})
	logger.Info("hello", FieldSeason, "2023_2024")
	if !strings.Contains(buf.String(), "season=2023_2024") {
		t.Fatalf("expected text output with season field, got %q", buf.String())
	}
}
