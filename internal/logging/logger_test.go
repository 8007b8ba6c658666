package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerDefaults(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info enabled by default")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug disabled by default")
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	logger := NewLogger(Config{Level: "debug", Format: "json"})
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug enabled")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := NewLogger(Config{})
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
}

func TestFromContextReturnsStoredLogger(t *testing.T) {
	stored := NewLogger(Config{Level: "warn"})
	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, nil); got != stored {
		t.Fatal("expected stored logger")
	}
}
