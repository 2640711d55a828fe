package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{" WARN ", slog.LevelWarn, slog.LevelInfo},
		{"verbose", slog.LevelInfo, slog.LevelDebug},
		{"", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		logger := New(tt.level)
		if !logger.Enabled(context.Background(), tt.enabled) {
			t.Errorf("level %q: expected %v enabled", tt.level, tt.enabled)
		}
		if logger.Enabled(context.Background(), tt.muted) {
			t.Errorf("level %q: expected %v muted", tt.level, tt.muted)
		}
	}
}

func TestDefaultIsInfo(t *testing.T) {
	logger := Default()
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("default logger should log at info")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger should not log at debug")
	}
}

func TestWithReturnsChildLogger(t *testing.T) {
	logger := Default().With("component", "test")
	if logger == nil || logger.Logger == nil {
		t.Fatal("With returned a nil logger")
	}
}
