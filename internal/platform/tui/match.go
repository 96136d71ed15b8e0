package tui

import (
	"time"

	"github.com/vovakirdan/region-arcade/internal/registry"
	"github.com/vovakirdan/region-arcade/internal/storage"
)

// MatchOutcome describes how a match left the game state.
type MatchOutcome struct {
	Summary  registry.MatchSummary
	MatchID  string // empty when not persisted
	Reason   string
	Duration time.Duration
	Err      error // save error, if any
}

// finishMatch tears the game down and persists its summary.
// Games that do not implement registry.Finisher report ok = false.
func finishMatch(game registry.Game, store *storage.Store, d time.Duration, reason string) (MatchOutcome, bool) {
	f, ok := game.(registry.Finisher)
	if !ok {
		return MatchOutcome{}, false
	}

	out := MatchOutcome{
		Summary:  f.Finish(),
		Reason:   reason,
		Duration: d,
	}
	if store != nil {
		out.MatchID, out.Err = store.SaveSummary(out.Summary, d, reason)
	}
	return out, true
}
