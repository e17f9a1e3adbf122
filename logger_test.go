package displaytext

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	assert.Equal(t, NopLogger{}, logger.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler)).With("component", "render")

	logger.Debug("debug message", "depth", 3)
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "depth=3")
	assert.Contains(t, out, "component=render")
	assert.Contains(t, out, "level=ERROR")

	assert.NotNil(t, NewSlogAdapter(nil))
}

func TestZapAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewZapAdapter(zap.New(core).Sugar()).With("component", "render")

	logger.Debug("debug message", "depth", 3)
	logger.Warn("warn message")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["depth"])
	assert.Equal(t, "render", entries[0].ContextMap()["component"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)

	assert.NotNil(t, NewZapAdapter(nil))
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)).With("component", "render")

	logger.Debug("debug message", "depth", 3)
	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"component":"render"`)
	assert.Contains(t, out, `"depth":3`)
	assert.Contains(t, out, `"message":"debug message"`)

	buf.Reset()
	logger.Error("failed", "error", errors.New("boom"), "dangling")
	out = buf.String()
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"!BADKEY":"dangling"`)
}

func TestZerologAdapter_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
