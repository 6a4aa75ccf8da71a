package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/config"
)

func TestNewLogger_Discard(t *testing.T) {
	logger, closeLog, err := newLogger(&config.Config{LogLevel: "warn"})
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, closeLog, err := newLogger(&config.Config{LogLevel: "info", LogFile: path})
	require.NoError(t, err)

	logger.Info("round won", "winner", "X")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "round won")
	assert.Contains(t, string(data), "winner=X")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, _, err := newLogger(&config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{LogLevel: "info"}

	require.NoError(t, rootCmd.Flags().Set("log-level", "debug"))
	require.NoError(t, rootCmd.Flags().Set("hide-score", "true"))
	applyFlags(rootCmd, cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HideScore)
	assert.False(t, cfg.Inline)
	assert.Empty(t, cfg.LogFile)
}
