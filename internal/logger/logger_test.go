package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{" info ", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	if got := DefaultPath(""); got != "" {
		t.Errorf("Expected empty path for empty data dir, got '%s'", got)
	}

	expected := filepath.Join("/data", "logs", DefaultFileName)
	if got := DefaultPath("/data"); got != expected {
		t.Errorf("Expected '%s', got '%s'", expected, got)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")

	log := New(Options{Level: "debug", Path: path})
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected log file to contain the entry")
	}
}

func TestNew_WithoutFile(t *testing.T) {
	log := New(Options{})
	if log == nil {
		t.Fatal("Expected logger")
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug should be disabled at default level")
	}
}
