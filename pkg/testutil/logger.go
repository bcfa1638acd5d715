// Package testutil provides utilities for testing.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// NewLogger returns a debug-level logger that routes records through
// t.Log, so pipeline output shows up attached to the failing test.
func NewLogger(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
