package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New("debug", true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	l, err = New("warn", false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level should be disabled at warn")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
}
