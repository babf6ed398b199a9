package linalg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	buf.Reset()
	return rec
}

func TestLogBatch(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	t.Run("Completed", func(t *testing.T) {
		logger.LogBatch(ctx, OpDot, 4, 0, nil)
		rec := decodeRecord(t, &buf)
		assert.Equal(t, "DEBUG", rec["level"])
		assert.Equal(t, "batch completed", rec["msg"])
		assert.Equal(t, "dot", rec["op"])
		assert.EqualValues(t, 4, rec["count"])
	})

	t.Run("Failed", func(t *testing.T) {
		logger.LogBatch(ctx, OpNormalise, 3, 1, vector.ErrZeroVector)
		rec := decodeRecord(t, &buf)
		assert.Equal(t, "ERROR", rec["level"])
		assert.Equal(t, "batch failed", rec["msg"])
		assert.EqualValues(t, 1, rec["failed"])
		assert.Equal(t, "Cannot normalize the zero vector", rec["error"])
	})

	t.Run("Aborted", func(t *testing.T) {
		logger.LogBatch(ctx, OpSum, 2, 0, errors.New("stop"))
		rec := decodeRecord(t, &buf)
		assert.Equal(t, "WARN", rec["level"])
		assert.Equal(t, "batch aborted", rec["msg"])
	})
}

func TestProcessorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := newProcessor(t, WithLogger(logger))

	_, err := p.Magnitudes(context.Background(), []vector.Vector{vec(1, 2)})
	require.NoError(t, err)

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "magnitude", rec["op"])
	assert.EqualValues(t, 1, rec["count"])
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
