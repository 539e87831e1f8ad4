package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("dictionary loaded", slog.Int("words", 4))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dictionary loaded", entry["msg"])
	assert.Equal(t, float64(4), entry["words"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug", "text").Debug("checking", slog.String("text", "a.txt"))

	assert.Contains(t, buf.String(), "msg=checking")
	assert.Contains(t, buf.String(), "text=a.txt")
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "speller.log")

	logger, cleanup, err := Setup(Config{Level: "info", Format: "auto", FilePath: path})
	require.NoError(t, err)
	logger.Info("hello")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetup_Discard(t *testing.T) {
	logger, cleanup, err := Setup(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer cleanup()
	logger.Info("goes nowhere")
}
