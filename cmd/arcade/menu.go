package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/region-arcade/internal/platform/tui"
	"github.com/vovakirdan/region-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Going back from a match records it and returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Match history
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./matches.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()

	if err := applyGameFlags(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store := openStore(logger)
	cfg := terminalConfig()
	status := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, status)
		if err != nil {
			logger.Error("menu stopped", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if hErr != nil {
				logger.Error("history stopped", "error", hErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "error", err)
			continue
		}

		// Fresh seed for each match unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		out, err := tui.Run(game, store, cfg)
		if err != nil {
			logger.Error("game stopped", "error", err)
		}
		tui.LogOutcome(logger, out)
		status = tui.OutcomeStatus(out)

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
