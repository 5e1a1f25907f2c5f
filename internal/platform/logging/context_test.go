package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace ID, got %q", got)
	}
	ctx := contextWithTraceID(context.Background(), "trace-abc")
	if got := TraceIDFromContext(ctx); got != "trace-abc" {
		t.Fatalf("expected trace-abc, got %q", got)
	}
}

func TestContextWithTraceIDEmpty(t *testing.T) {
	ctx := context.Background()
	if got := contextWithTraceID(ctx, ""); got != ctx {
		t.Fatal("expected unchanged context for empty trace ID")
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogError(ctx, "failed", errors.New("boom"), zap.String("foo", "bar"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["foo"] != "bar" {
		t.Fatalf("expected foo field, got %+v", fields)
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error field, got %+v", fields)
	}
}

func TestLogErrorNilError(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogError(ctx, "failed", nil)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["error"]; ok {
		t.Fatal("did not expect error field for nil error")
	}
}

func TestLogInfoAndWarnUseContextLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogInfo(ctx, "info message")
	LogWarn(ctx, "warn message")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected levels: %s, %s", entries[0].Level, entries[1].Level)
	}
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	if LoggerFromContext(nil) != Logger() {
		t.Fatal("expected global logger for nil context")
	}
	ctx := context.WithValue(context.Background(), ctxLoggerKey{}, (*zap.Logger)(nil))
	if LoggerFromContext(ctx) != Logger() {
		t.Fatal("expected global logger when context holds nil logger")
	}
}
