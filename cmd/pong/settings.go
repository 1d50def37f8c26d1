package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

const defaultLogFile = "~/.pong/pong.log"

// loadSettings loads the configuration and difficulty named by the global flags.
func loadSettings() (config.PongConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, "", err
	}
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, preset, err
	}
	return cfg, preset, nil
}

// mustLoadSettings is loadSettings for commands that cannot continue without it.
func mustLoadSettings() (config.PongConfig, config.DifficultyPreset) {
	cfg, preset, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg, preset
}

// newFileLogger opens the client log. The terminal belongs to the game, so
// the client never logs to stdout or stderr while running.
// The returned closer must be called on exit.
func newFileLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	path, err = config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           lvl,
	})
	return logger, f, nil
}
