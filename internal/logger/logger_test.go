package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG", false))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning", true))
	assert.Equal(t, slog.LevelError, parseLevel("error", false))
	assert.Equal(t, slog.LevelDebug, parseLevel("", true))
	assert.Equal(t, slog.LevelInfo, parseLevel("", false))
}

func TestHelpersWithoutLogger(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Info("info")
		Warn("warn")
		Error("error")
		Debug("debug")
	})
}
