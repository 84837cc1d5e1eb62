package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler_RespectsEachLevel(t *testing.T) {
	var debug, warn bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("game.id", "abc").WithGroup("bot")

	log.Debug("Searching", "depth", 3)
	log.Warn("Slow search")

	assert.Contains(t, debug.String(), "Searching")
	assert.Contains(t, debug.String(), "game.id=abc")
	assert.Contains(t, debug.String(), "bot.depth=3")
	assert.NotContains(t, warn.String(), "Searching")
	assert.Contains(t, warn.String(), "Slow search")
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var out bytes.Buffer
	require.NoError(t, Init(&out, "info"))

	slog.Debug("hidden")
	slog.Info("shown", "bot.column", 2)

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "bot.column=2")

	assert.Error(t, Init(&out, "loud"))
}
