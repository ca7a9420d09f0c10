package logger

import (
	"context"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	l := Get()
	if l == nil {
		t.Fatal("Get returned nil after Init")
	}

	ctx := context.Background()
	l.Info(ctx, "info message", String("key", "value"))
	l.Debug(ctx, "debug message", Int("n", 1))
	l.Warn(ctx, "warn message", Float64("f", 0.5))
	l.Error(ctx, "error message", Any("v", []int{1, 2}))

	named := l.Named("season")
	if named == nil {
		t.Fatal("Named returned nil")
	}
	named.Info(ctx, "named logger message")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	for _, level := range []string{"debug", "info", "warn", "warning", "error", ""} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("SetLevelString(%q) returned error: %v", level, err)
		}
	}

	if err := SetLevelString("verbose"); err == nil {
		t.Error("SetLevelString accepted an unknown level")
	}
}
