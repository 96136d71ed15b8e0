package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/region-arcade/internal/core"
	"github.com/vovakirdan/region-arcade/internal/registry"
	"github.com/vovakirdan/region-arcade/internal/storage"
)

// Model is the Bubble Tea model for running an arcade game.
// Standalone models quit the program when the match ends; embedded ones
// (SSH sessions) report BackToMenu and let the parent switch views.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	standalone bool

	quitting   bool
	backToMenu bool
	finished   bool
	outcome    *MatchOutcome
}

// NewModel creates a standalone Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := NewGameModel(game, store, cfg)
	m.standalone = true
	return m
}

// NewGameModel creates a model embedded in a larger session.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The match keeps running; only the view adapts
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m = m.finish(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	// Restart abandons the current match without recording it
	if m.inputFrame.Has(core.ActionRestart) {
		m.game.Reset(m.config)
		m.started = time.Now()
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.ReturnToMenu {
		m = m.finish(storage.EndReturn)
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// finish ends the match once, recording its outcome.
func (m Model) finish(reason string) Model {
	if m.finished {
		return m
	}
	m.finished = true
	if out, ok := finishMatch(m.game, m.store, time.Since(m.started), reason); ok {
		m.outcome = &out
	}
	return m
}

// Disconnect ends the match because the session went away.
func (m Model) Disconnect() Model {
	return m.finish(storage.EndDisconnect)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the return control was activated.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Outcome returns the recorded match, or nil if the match has not ended
// or the game has no summary.
func (m Model) Outcome() *MatchOutcome {
	return m.outcome
}

// LogOutcome writes a finished match to the logger.
func LogOutcome(logger *log.Logger, out *MatchOutcome) {
	if logger == nil || out == nil {
		return
	}
	if out.Err != nil {
		logger.Error("could not save match", "game", out.Summary.GameID, "error", out.Err)
	}
	logger.Info("match finished",
		"game", out.Summary.GameID,
		"match", out.MatchID,
		"red", out.Summary.Tallies["red"],
		"blue", out.Summary.Tallies["blue"],
		"ticks", out.Summary.Ticks,
		"winner", out.Summary.Winner,
		"reason", out.Reason,
		"duration", out.Duration.Round(time.Second),
	)
}

// Run starts the Bubble Tea program with the given game and returns the
// outcome of the match once the program exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (*MatchOutcome, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	if !m.finished {
		// Program ended without a quit key (e.g. killed); still record the match
		m = m.finish(storage.EndQuit)
	}
	return m.Outcome(), nil
}
