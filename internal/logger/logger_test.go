package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(&buf, Config{Level: "info"})

	log.With("direction", "cyr-lat").Info("translated", "chars", 5)
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "translated")
	assert.Contains(t, out, "direction")
	assert.Contains(t, out, "chars")
	assert.NotContains(t, out, "hidden")
}

func TestPrettyHandlerGroup(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(&buf, Config{})

	log.WithGroup("http").Info("request", "status", 200)
	assert.Contains(t, buf.String(), "http.status")
}

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(&buf, Config{Format: "json", Level: "debug"})

	log.Debug("translated", "direction", "ar-lat")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "translated", rec["msg"])
	assert.Equal(t, "ar-lat", rec["direction"])
	assert.Equal(t, "DEBUG", rec["level"])
}
