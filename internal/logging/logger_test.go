package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DEBUG},
		{"DEBUG", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
		{"fatal", FATAL},
		{"", INFO},
		{"verbose", INFO},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLogLevel(tt.input), "level %q", tt.input)
	}
}

func TestTraceIDContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-abc")
	assert.Equal(t, "trace-abc", GetTraceID(ctx))

	// An empty trace ID gets generated rather than stored empty.
	ctx = WithTraceID(context.Background(), "")
	assert.NotEmpty(t, GetTraceID(ctx))

	assert.Equal(t, "", GetTraceID(context.Background()))
	assert.Equal(t, "", GetTraceID(nil)) //nolint:staticcheck
}

func TestGenerateTraceID(t *testing.T) {
	first := GenerateTraceID()
	second := GenerateTraceID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestWithComponentClones(t *testing.T) {
	base := NewLogger(INFO, "json")

	withComponent := base.WithComponent("engine")
	withTrace := withComponent.WithTraceID("trace-1")

	// Each With* call returns an independent copy.
	assert.NotSame(t, base, withComponent)
	assert.NotSame(t, withComponent, withTrace)

	sl, ok := withTrace.(*StructuredLogger)
	assert.True(t, ok)
	assert.Equal(t, "engine", sl.component)
	assert.Equal(t, "trace-1", sl.traceID)
}

func TestNoopLoggerIsSafe(t *testing.T) {
	logger := NewNoop()

	// Every method is a no-op; none may panic.
	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg", "dangling-key")
	logger.Error("msg")
	logger.InfoContext(context.Background(), "msg")

	assert.Same(t, logger, logger.WithComponent("x"))
	assert.Same(t, logger, logger.WithTraceID("y"))
}
