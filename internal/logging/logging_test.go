package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"console", "json", ""} {
		l, err := New("debug", format)
		if err != nil {
			t.Fatalf("format %q: %v", format, err)
		}
		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("format %q: debug should be enabled", format)
		}
	}
}

func TestNewLevel(t *testing.T) {
	l, err := New("warn", "console")
	if err != nil {
		t.Fatal(err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be filtered at warn")
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New("loud", "console"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
