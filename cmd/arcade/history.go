package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/region-arcade/internal/registry"
	"github.com/vovakirdan/region-arcade/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryMatch string
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recorded matches",
	Long: `Display the most recent recorded matches, newest first, followed by
per-game statistics. With a game ID only that game's matches are listed.

Examples:
  arcade history
  arcade history region --limit 50
  arcade history region --clear
  arcade history --match 3f2a...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches of the game")
	historyCmd.Flags().StringVar(&flagHistoryMatch, "match", "", "Show a single match by its ID")
}

func runHistory(_ *cobra.Command, args []string) {
	logger := newLogger()

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			logger.Error("unknown game", "game", gameID)
			logger.Info("run 'arcade list' to see available games")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open match database", "path", flagDBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryMatch != "" {
		showMatch(logger, store, flagHistoryMatch)
		return
	}

	if flagHistoryClear {
		if gameID == "" {
			logger.Error("--clear needs a game")
			return
		}
		if err := store.ClearMatches(gameID); err != nil {
			logger.Error("could not clear matches", "error", err)
			return
		}
		logger.Info("matches cleared", "game", gameID)
		return
	}

	var matches []storage.MatchRecord
	if gameID == "" {
		matches, err = store.RecentMatches(flagHistoryLimit)
	} else {
		matches, err = store.GameMatches(gameID, flagHistoryLimit)
	}
	if err != nil {
		logger.Error("could not read matches", "error", err)
		return
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Println("Recent matches")
	fmt.Println()
	fmt.Printf("  %-10s  %6s  %6s  %-6s  %8s  %-10s  %s\n", "Game", "Red", "Blue", "Winner", "Ticks", "End", "Date")
	fmt.Printf("  %-10s  %6s  %6s  %-6s  %8s  %-10s  %s\n", "----", "---", "----", "------", "-----", "---", "----")

	for _, m := range matches {
		fmt.Printf("  %-10s  %6d  %6d  %-6s  %8d  %-10s  %s\n",
			m.GameID,
			m.RedCells,
			m.BlueCells,
			m.Winner(),
			m.Ticks,
			m.EndReason,
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats()
	if err != nil {
		logger.Error("could not read stats", "error", err)
		return
	}

	fmt.Println()
	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok || (gameID != "" && info.ID != gameID) {
			continue
		}
		fmt.Printf("%s: %d matches, red %d / blue %d / draw %d, avg %.1f red %.1f blue, %d ticks total\n",
			info.Title, s.MatchesCount, s.RedWins, s.BlueWins, s.Draws, s.AvgRed, s.AvgBlue, s.TotalTicks)
	}
}

func showMatch(logger *log.Logger, store *storage.Store, matchID string) {
	m, err := store.MatchByID(matchID)
	if err != nil {
		logger.Error("could not read match", "match", matchID, "error", err)
		return
	}
	if m == nil {
		logger.Error("match not found", "match", matchID)
		return
	}

	fmt.Printf("Match %s (%s)\n", m.MatchID, m.GameID)
	fmt.Printf("  Red:      %d\n", m.RedCells)
	fmt.Printf("  Blue:     %d\n", m.BlueCells)
	fmt.Printf("  Cells:    %d\n", m.TotalCells)
	fmt.Printf("  Winner:   %s\n", m.Winner())
	fmt.Printf("  Ticks:    %d\n", m.Ticks)
	fmt.Printf("  Duration: %ds\n", m.Duration)
	fmt.Printf("  End:      %s\n", m.EndReason)
	fmt.Printf("  Date:     %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04"))
}
