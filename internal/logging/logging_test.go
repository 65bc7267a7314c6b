package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "", want: zapcore.ErrorLevel},
		{level: "debug", want: zapcore.DebugLevel},
		{level: " WARN ", want: zapcore.WarnLevel},
	}

	for _, tc := range tests {
		logger, err := New(tc.level)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.level, err)
		}
		if logger == nil {
			t.Fatalf("expected logger instance")
		}
		if !logger.Core().Enabled(tc.want) {
			t.Fatalf("expected %v enabled for level %q", tc.want, tc.level)
		}
		if tc.want > zapcore.DebugLevel && logger.Core().Enabled(tc.want-1) {
			t.Fatalf("expected %v disabled for level %q", tc.want-1, tc.level)
		}
		_ = logger.Sync()
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
