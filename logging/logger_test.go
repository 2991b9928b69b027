package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultDiscards(t *testing.T) {
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("expected a logger even when none is configured")
	}
	// Must not panic.
	l.Debug("discarded")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	Logger().Debug("page tree loaded", "pages", 3)

	out := buf.String()
	if !strings.Contains(out, "page tree loaded") || !strings.Contains(out, "pages=3") {
		t.Errorf("unexpected log output: %q", out)
	}
}
