package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/region-arcade/internal/core"
	"github.com/vovakirdan/region-arcade/internal/games/region"
	"github.com/vovakirdan/region-arcade/internal/registry"
	"github.com/vovakirdan/region-arcade/internal/storage"
)

var (
	flagSimTicks int
	flagSimCheck bool
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a match headless and print the tally",
	Long: `Run the region simulation at fixed steps without a terminal UI.

The final tally and a hash of the world state are printed. With --check the
match is run twice and the hashes must agree.

Examples:
  arcade sim --ticks 3600
  arcade sim --ticks 600 --check
  arcade sim --difficulty hard --save`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of fixed ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimCheck, "check", false, "Run twice and verify both runs end in the same state")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the match in the database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult is the end state of one headless run.
type simResult struct {
	summary registry.MatchSummary
	hash    uint64
	elapsed time.Duration
}

// simulate runs one match for the given number of ticks.
func simulate(ticks int) simResult {
	start := time.Now()

	game := region.New()
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed})

	idle := core.NewInputFrame()
	for range ticks {
		game.Step(idle)
	}

	snap := game.Snapshot()
	return simResult{
		summary: game.Finish(),
		hash:    snap.Hash(),
		elapsed: time.Since(start),
	}
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger()

	if flagSimTicks < 0 {
		logger.Error("--ticks must not be negative", "ticks", flagSimTicks)
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	res := simulate(flagSimTicks)
	logger.Debug("simulation done", "ticks", flagSimTicks, "elapsed", res.elapsed)

	fmt.Printf("ticks  %d\n", res.summary.Ticks)
	fmt.Printf("red    %d\n", res.summary.Tallies["red"])
	fmt.Printf("blue   %d\n", res.summary.Tallies["blue"])
	fmt.Printf("total  %d\n", res.summary.Total)
	fmt.Printf("hash   %016x\n", res.hash)

	if flagSimCheck {
		again := simulate(flagSimTicks)
		if again.hash != res.hash {
			logger.Error("runs diverged", "first", fmt.Sprintf("%016x", res.hash), "second", fmt.Sprintf("%016x", again.hash))
			os.Exit(1)
		}
		fmt.Println("check  ok")
	}

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Error("could not open match database", "path", flagDBPath, "error", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := store.SaveSummary(res.summary, res.elapsed, storage.EndSim)
		if err != nil {
			logger.Error("could not save match", "error", err)
			return
		}
		logger.Info("match saved", "match", id)
	}
}
