package logger

import (
	"errors"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedLogger builds a LoggerClient over an in-memory core so tests can
// inspect emitted entries.
func newObservedLogger(level zapcore.Level) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewFromZap(zap.New(core)), logs
}

func TestNewLoggerClient_Levels(t *testing.T) {
	t.Parallel()
	cases := []struct {
		level    string
		expected zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tc.level); got != tc.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tc.level, got, tc.expected)
			}
			l := NewLoggerClient(Config{Level: tc.level, ServiceName: "test"})
			if l == nil || l.Zap == nil {
				t.Fatal("expected a usable LoggerClient")
			}
			if !l.Zap.Core().Enabled(tc.expected) {
				t.Errorf("expected level %v to be enabled", tc.expected)
			}
		})
	}
}

func TestNewLoggerClient_Development(t *testing.T) {
	t.Parallel()
	l := NewLoggerClient(Config{Level: Debug, Development: true})
	if l == nil {
		t.Fatal("expected non-nil LoggerClient")
	}
}

func TestNewFromZap_NilFallsBackToNop(t *testing.T) {
	t.Parallel()
	l := NewFromZap(nil)
	if l.Zap == nil {
		t.Fatal("expected nop zap logger")
	}
	l.Info("dropped", nil)
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	t.Parallel()
	l := NewNop()
	if l.Zap.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not enable any level")
	}
}

func TestConvertToZapFields(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel)

	if fields := l.convertToZapFields(nil); len(fields) != 0 {
		t.Errorf("expected 0 fields, got %d", len(fields))
	}

	fields := l.convertToZapFields(errors.New("oops"),
		map[string]interface{}{"candidate": "otel-env"},
		map[string]interface{}{"kind": "resolver"},
	)
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Key != "error" {
		t.Errorf("expected first key to be 'error', got %q", fields[0].Key)
	}
}

func TestLevels(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel)

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)
	l.Error("e", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, entry := range entries {
		if entry.Level != want[i] {
			t.Errorf("entry %d: level %v, want %v", i, entry.Level, want[i])
		}
	}
	if entries[3].ContextMap()["error"] != "boom" {
		t.Errorf("expected error field 'boom', got %v", entries[3].ContextMap()["error"])
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel)
	l.Debug("should not appear", nil)
	if logs.Len() != 0 {
		t.Errorf("expected debug entry to be suppressed, got %d entries", logs.Len())
	}
}

func TestWith_AddsFields(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel)

	child := l.With(map[string]interface{}{"component": "tracerresolver"})
	child.Info("resolved", nil, map[string]interface{}{"source": "factory"})

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["component"] != "tracerresolver" {
		t.Errorf("expected component field, got %v", fields["component"])
	}
	if fields["source"] != "factory" {
		t.Errorf("expected source field, got %v", fields["source"])
	}
}

func TestFXModule_ProvidesLogger(t *testing.T) {
	t.Parallel()
	var log Logger

	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{Level: Info, ServiceName: "fx-test"}),
		fx.Populate(&log),
	)
	app.RequireStart()
	defer app.RequireStop()

	if log == nil {
		t.Fatal("expected Logger to be provided")
	}
}

func TestLoggerClient_ImplementsLogger(t *testing.T) {
	t.Parallel()
	var _ Logger = NewNop()
}
