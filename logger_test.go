package linmath

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestLogBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf).LogBatch(ctx, "transform", 10, 0, nil)

		rec := decodeRecord(t, &buf)
		assert.Equal(t, "DEBUG", rec["level"])
		assert.Equal(t, "batch completed", rec["msg"])
		assert.Equal(t, "transform", rec["op"])
		assert.EqualValues(t, 10, rec["count"])
	})

	t.Run("PartialFailure", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf).LogBatch(ctx, "normalize", 10, 2, nil)

		rec := decodeRecord(t, &buf)
		assert.Equal(t, "WARN", rec["level"])
		assert.EqualValues(t, 8, rec["success"])
	})

	t.Run("Error", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf).LogBatch(ctx, "normalize", 10, 10, errors.New("boom"))

		rec := decodeRecord(t, &buf)
		assert.Equal(t, "ERROR", rec["level"])
		assert.Equal(t, "batch failed", rec["msg"])
		assert.Equal(t, "boom", rec["error"])
	})
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithOp("scale").WithCount(3)

	l.Info("hello")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "scale", rec["op"])
	assert.EqualValues(t, 3, rec["count"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() {
		l.LogBatch(context.Background(), "map", 1, 1, errors.New("ignored"))
	})
}

func TestNewLoggerDefaultHandler(t *testing.T) {
	l := NewLogger(nil)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}
