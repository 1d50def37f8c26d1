package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the menu and play",
	Long: `Open the pong menu in the terminal.

Controls:
  W/Up/K     - Move your paddle up
  S/Down/J   - Move your paddle down
  Space/P    - Play / pause
  Esc        - Back to the menu (quits from the menu)
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --difficulty easy
  pong play --config ./configs/pong.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset := mustLoadSettings()

	logger, closer, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	// Get terminal size
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Open history storage; play continues without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	logger.Info("client started", "fps", rt.TickRate, "difficulty", preset, "size", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))

	if err := tui.Run(tui.Options{
		Runtime:    rt,
		Config:     cfg,
		Difficulty: preset,
		Store:      store,
		Player:     tui.LocalPlayer,
		Logger:     logger,
	}); err != nil {
		logger.Error("client failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("client exited")
}
