package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/region-arcade/internal/core"
	"github.com/vovakirdan/region-arcade/internal/games/region"
	"github.com/vovakirdan/region-arcade/internal/platform/tui"
	"github.com/vovakirdan/region-arcade/internal/registry"
	"github.com/vovakirdan/region-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start the specified game.

Controls:
  B/Esc      - Go back (ends and records the match)
  P          - Pause
  R          - Restart the match
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Headings at their configured speed
  normal - Headings 30% faster
  hard   - Headings 70% faster
  fixed  - No scaling, headings exactly as configured

Examples:
  arcade play region
  arcade play region --difficulty hard
  arcade play region --config ./my-region.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the region game and
// rejects a configuration that cannot build an arena.
func applyGameFlags() error {
	region.SetConfigPath(flagConfig)
	region.SetDifficultyPreset(flagDifficulty)
	_, err := region.LoadSettings()
	return err
}

// terminalConfig builds the runtime config from the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the match database, or returns nil so the game still runs.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		logger.Error("unknown game", "game", gameID)
		logger.Info("run 'arcade list' to see available games")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("could not create game", "error", err)
		os.Exit(1)
	}

	store := openStore(logger)

	out, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		os.Exit(1)
	}
	tui.LogOutcome(logger, out)
}
