package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFormatsModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With(slog.String("module", "window")).Info("resized", slog.Int("width", 800), slog.Int("height", 600))

	line := out.String()
	assert.Contains(t, line, "[window] ")
	assert.Contains(t, line, "resized")
	assert.Contains(t, line, "height=600")
	assert.Contains(t, line, "width=800")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("height")), bytes.Index(out.Bytes(), []byte("width")))
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("quiet")
	assert.Empty(t, out.String())

	logger.Error("loud")
	assert.Contains(t, out.String(), "loud")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
