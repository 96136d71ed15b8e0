package region

import (
	"fmt"

	"github.com/vovakirdan/region-arcade/internal/config"
	"github.com/vovakirdan/region-arcade/internal/core"
	"github.com/vovakirdan/region-arcade/internal/registry"
)

// GameID is the registry identifier.
const GameID = "region"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadSettings resolves the configured settings the same way Reset does.
func LoadSettings() (Settings, error) {
	cfg, err := config.LoadRegion(configPath)
	if err != nil {
		return Settings{}, err
	}
	config.ApplyRegionPreset(&cfg, difficultyPreset)
	return SettingsFromConfig(cfg), nil
}

// SettingsFromConfig converts a loaded config into world settings.
// Headings are scaled by the difficulty speed factor.
func SettingsFromConfig(cfg config.RegionConfig) Settings {
	scale := config.NewDifficultyManager(cfg.Difficulty).Speed(1.0)
	red := core.V(cfg.Players.RedHeading.X, cfg.Players.RedHeading.Y).Scale(scale)
	blue := core.V(cfg.Players.BlueHeading.X, cfg.Players.BlueHeading.Y).Scale(scale)

	return PlacedSettings(
		cfg.Arena.BrickWidth,
		cfg.Arena.GridCount,
		cfg.Arena.WallThickness,
		cfg.Players.Radius,
		cfg.Players.StartColumn,
		red, blue,
	)
}

// ReturnControl is the in-game button that leaves the match.
type ReturnControl struct {
	Hotkey string
	Label  string
}

// Game implements the Region Capture game logic.
type Game struct {
	runtime  core.RuntimeConfig
	settings Settings

	world   *World
	board   *ScoreBoard
	control *ReturnControl

	paused       bool
	returnToMenu bool
	last         TickReport
	summary      *registry.MatchSummary
}

// New creates a game that loads its settings from config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithSettings creates a game that always uses s, bypassing config.
func NewWithSettings(s Settings) *Game {
	return &Game{settings: s}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Region Capture"
}

// Reset spawns a fresh match. An arena that cannot be built is fatal;
// config validation is expected to have rejected it earlier.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.settings == (Settings{}) {
		s, err := LoadSettings()
		if err != nil {
			panic(fmt.Sprintf("region: %v", err))
		}
		g.settings = s
	}

	world, err := NewWorld(g.settings)
	if err != nil {
		panic(fmt.Sprintf("region: %v", err))
	}

	g.world = world
	g.board = NewScoreBoard()
	g.board.Update(world.Grid)
	g.control = &ReturnControl{Hotkey: "B", Label: "GoBack"}
	g.paused = false
	g.returnToMenu = false
	g.last = TickReport{}
	g.summary = nil
}

// Step advances the match by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.returnToMenu {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBack) {
		g.returnToMenu = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.last = g.world.Tick(g.runtime.TickSeconds())
	g.board.Update(g.world.Grid)

	return core.StepResult{State: g.State()}
}

// State returns the current game state. Score reports Red's cell count.
// There is no win condition, so GameOver is never set.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused:       g.paused,
		ReturnToMenu: g.returnToMenu,
	}
	if g.world != nil {
		st.Score = g.world.Grid.Count(Red)
	}
	return st
}

// World exposes the running world, or nil after Finish.
func (g *Game) World() *World {
	return g.world
}

// ScoreBoard exposes the score counters, or nil after Finish.
func (g *Game) ScoreBoard() *ScoreBoard {
	return g.board
}

// LastTick returns the report of the most recent tick.
func (g *Game) LastTick() TickReport {
	return g.last
}

// Entities counts spawned entities: cells, walls, players, score counters
// and the return control.
func (g *Game) Entities() int {
	n := 0
	if g.world != nil {
		n += g.world.Grid.Len() + len(g.world.Walls) + len(Colors)
	}
	if g.board != nil {
		n += len(g.board.Counters)
	}
	if g.control != nil {
		n++
	}
	return n
}

// Finish records the final tally and despawns every entity.
// Further calls return the same summary.
func (g *Game) Finish() registry.MatchSummary {
	if g.summary != nil {
		return *g.summary
	}

	s := registry.MatchSummary{GameID: GameID, Tallies: map[string]int{}, Winner: registry.Draw}
	if g.world != nil {
		t := g.world.Tally()
		s.Ticks = g.world.TickCount()
		for _, c := range Colors {
			s.Tallies[c.String()] = t.Of(c)
		}
		s.Total = t.Total()
		if leader, ok := t.Leader(); ok {
			s.Winner = leader.String()
		}
	}

	g.world = nil
	g.board = nil
	g.control = nil
	g.summary = &s
	return s
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
