package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerFormatsAndFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden %d", 1)
	logger.Info("player %s rolled %d", "ann", 6)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "player ann rolled 6") {
		t.Fatalf("missing formatted message: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, slog.LevelDebug)
	child := base.WithField("game", "g1").WithFields(map[string]interface{}{"turn": 3})

	child.Warn("capture")
	out := buf.String()
	if !strings.Contains(out, "game=g1") || !strings.Contains(out, "turn=3") {
		t.Fatalf("fields missing from %q", out)
	}
	if len(base.Fields()) != 0 {
		t.Fatalf("child fields leaked into parent: %v", base.Fields())
	}
	if got := child.Fields()["turn"]; got != 3 {
		t.Fatalf("turn field = %v, want 3", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"WARN":   slog.LevelWarn,
		"error":  slog.LevelError,
		"":       slog.LevelInfo,
		"chatty": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
