package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatConsole, ParseFormat("Console"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("logfmt"))
}

func TestNew_JSONFieldsAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, LevelInfo).With("tournament_id", "cup")

	logger.Debug("hidden")
	logger.Info("standings computed", "teams", 6, "error", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, sonic.UnmarshalString(lines[0], &rec))
	assert.Equal(t, "standings computed", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "cup", rec["tournament_id"])
	assert.EqualValues(t, 6, rec["teams"])
	assert.Equal(t, "boom", rec["error"])
}

func TestInfoContext_AddsTraceFields(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	var buf bytes.Buffer
	New(&buf, FormatJSON, LevelDebug).InfoContext(ctx, "traced")

	var rec map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, span.SpanContext().TraceID().String(), rec["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), rec["span_id"])
}

func TestSetMirror(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		got = append(got, level.String()+":"+msg)
	})
	defer SetMirror(nil)

	var buf bytes.Buffer
	logger := New(&buf, FormatConsole, LevelWarn)
	logger.Info("filtered")
	logger.WarnContext(context.Background(), "cache degraded")

	assert.Equal(t, []string{"warn:cache degraded"}, got)
	assert.Contains(t, buf.String(), "cache degraded")
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("ignored")
		logger.With("k", "v").Warn("ignored")
	})
}
