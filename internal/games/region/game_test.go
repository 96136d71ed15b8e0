package region

import (
	"strings"
	"testing"

	"github.com/vovakirdan/region-arcade/internal/config"
	"github.com/vovakirdan/region-arcade/internal/core"
	"github.com/vovakirdan/region-arcade/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithSettings(DefaultSettings())
	g.Reset(core.DefaultConfig())
	return g
}

func step(g *Game, n int, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		res = g.Step(in)
	}
	return res
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", GameID, err)
	}
	if g.Title() != "Region Capture" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.Finisher); !ok {
		t.Error("region game should implement Finisher")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	// 961 cells, 4 walls, 2 players, 2 score counters, 1 return control
	if got := g.Entities(); got != 970 {
		t.Errorf("Entities() = %d, expected 970", got)
	}
	if g.ScoreBoard().Counters[0].Text != "496" {
		t.Errorf("red score text = %q, expected 496", g.ScoreBoard().Counters[0].Text)
	}

	st := g.State()
	if st.Score != 496 || st.GameOver || st.Paused || st.ReturnToMenu {
		t.Errorf("State() = %+v", st)
	}
}

func TestGameResetLoadsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	g.Reset(core.DefaultConfig())
	if g.World().Grid.Size() != 31 {
		t.Errorf("grid size = %d, expected embedded default 31", g.World().Grid.Size())
	}
}

func TestGameResetPanicsOnDegenerateArena(t *testing.T) {
	s := DefaultSettings()
	s.GridCount = 0
	g := NewWithSettings(s)

	defer func() {
		if recover() == nil {
			t.Error("Reset() should panic for a degenerate arena")
		}
	}()
	g.Reset(core.DefaultConfig())
}

func TestGameStepAdvancesWorld(t *testing.T) {
	g := newTestGame(t)
	step(g, 10)

	if g.World().TickCount() != 10 {
		t.Errorf("TickCount() = %d, expected 10", g.World().TickCount())
	}
	if g.LastTick().Tick != 10 {
		t.Errorf("LastTick().Tick = %d", g.LastTick().Tick)
	}
	want := DefaultSettings().RedStart.Add(core.V(100, 100).Scale(10 * core.DefaultConfig().TickSeconds()))
	if d := g.World().Red.Pos.Sub(want).Len(); d > 1e-9 {
		t.Errorf("red at %+v, expected %+v", g.World().Red.Pos, want)
	}
}

func TestGameMovementIgnoresDirectionKeys(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	step(a, 50)
	step(b, 50, core.ActionUp, core.ActionDown, core.ActionConfirm)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Error("input other than back and pause should not affect play")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	step(g, 5)

	res := step(g, 1, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("pause should toggle on")
	}
	step(g, 20)
	if g.World().TickCount() != 5 {
		t.Errorf("paused world advanced to %d", g.World().TickCount())
	}

	step(g, 1, core.ActionPause)
	if g.State().Paused || g.World().TickCount() != 6 {
		t.Errorf("unpause should resume ticking, tick = %d", g.World().TickCount())
	}
}

func TestGameReturnControl(t *testing.T) {
	g := newTestGame(t)
	step(g, 3)

	res := step(g, 1, core.ActionBack)
	if !res.State.ReturnToMenu {
		t.Fatal("back should activate the return control")
	}
	step(g, 10)
	if g.World().TickCount() != 3 {
		t.Error("no ticks should run once the return control is active")
	}
}

func TestGameFinishDespawns(t *testing.T) {
	g := newTestGame(t)
	step(g, 120)
	tally := g.World().Tally()

	sum := g.Finish()
	if sum.GameID != GameID || sum.Ticks != 120 || sum.Total != 961 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Tallies["red"] != tally.Red || sum.Tallies["blue"] != tally.Blue {
		t.Errorf("tallies = %v, expected %+v", sum.Tallies, tally)
	}
	if leader, ok := tally.Leader(); ok && sum.Winner != leader.String() {
		t.Errorf("Winner = %q, expected %q", sum.Winner, leader)
	}

	if g.Entities() != 0 || g.World() != nil || g.ScoreBoard() != nil {
		t.Error("Finish() should despawn every entity")
	}

	// Inert until the next Reset
	step(g, 5)
	if again := g.Finish(); again.Ticks != sum.Ticks || again.Total != sum.Total {
		t.Errorf("second Finish() = %+v, expected the same summary", again)
	}

	g.Reset(core.DefaultConfig())
	if g.Entities() != 970 || g.World().TickCount() != 0 {
		t.Error("Reset() after Finish() should respawn a fresh match")
	}
}

func TestGameFinishWinner(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		winner string
	}{
		{"wider red half", 30, "red"},
		{"even split", 1, registry.Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithSettings(PlacedSettings(20, tt.count, 40, 10, 0, core.V(100, 100), core.V(-100, -100)))
			g.Reset(core.DefaultConfig())
			if got := g.Finish().Winner; got != tt.winner {
				t.Errorf("Winner = %q, expected %q", got, tt.winner)
			}
		})
	}
}

func TestGameNeverEnds(t *testing.T) {
	g := newTestGame(t)
	if res := step(g, 2000); res.State.GameOver {
		t.Error("there is no win condition")
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultRegionConfig()
	if s := SettingsFromConfig(cfg); s != DefaultSettings() {
		t.Errorf("default config = %+v, expected %+v", s, DefaultSettings())
	}

	config.ApplyRegionPreset(&cfg, config.DifficultyHard)
	s := SettingsFromConfig(cfg)
	if s.RedHeading.Sub(core.V(170, 170)).Len() > 1e-9 || s.BlueHeading.Sub(core.V(-170, -170)).Len() > 1e-9 {
		t.Errorf("hard headings = %+v / %+v, expected scaled by 1.7", s.RedHeading, s.BlueHeading)
	}

	cfg = config.DefaultRegionConfig()
	cfg.Players.StartColumn = 2
	if s := SettingsFromConfig(cfg); s.RedStart != core.V(-260, 0) || s.BlueStart != core.V(260, 0) {
		t.Errorf("start column 2: starts = %+v / %+v", s.RedStart, s.BlueStart)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	top := scr.Row(0)
	if !strings.Contains(top, "RED SCORE 496") || !strings.Contains(top, "BLUE SCORE 465") {
		t.Errorf("HUD = %q", top)
	}
	if !strings.Contains(scr.Row(23), "[B] GoBack") {
		t.Errorf("control row = %q", scr.Row(23))
	}
	if c := scr.GetCell(1, 0); c.Color != core.ColorNavy {
		t.Errorf("score text color = %v, expected navy", c.Color)
	}

	players, walls, red, blue := 0, 0, 0, 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			c := scr.GetCell(x, y)
			switch {
			case c.Rune == PlayerGlyph:
				players++
			case c.Color == core.ColorSilver:
				walls++
			case c.Rune == CellGlyph && c.Color == core.ColorMaroon:
				red++
			case c.Rune == CellGlyph && c.Color == core.ColorGray:
				blue++
			}
		}
	}
	if players != 2 {
		t.Errorf("drew %d players, expected 2", players)
	}
	if walls == 0 || red == 0 || blue == 0 {
		t.Errorf("walls=%d red=%d blue=%d, expected all present", walls, red, blue)
	}
}

func TestGameRenderAfterFinish(t *testing.T) {
	g := newTestGame(t)
	g.Finish()

	scr := core.NewScreen(40, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Match over") {
		t.Error("finished game should render the end message")
	}
	if strings.ContainsRune(scr.String(), PlayerGlyph) {
		t.Error("no entities should be drawn after Finish")
	}
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name         string
		size, w, h   int
		stride, cols int
		ok           bool
	}{
		{"fits", 5, 80, 22, 1, 5, true},
		{"downsampled", 31, 80, 22, 2, 16, true},
		{"narrow", 31, 20, 40, 4, 8, true},
		{"too small", 31, 3, 2, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := computeLayout(tt.size, tt.w, tt.h)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if l.stride != tt.stride || l.cols != tt.cols {
				t.Errorf("stride=%d cols=%d, expected %d/%d", l.stride, l.cols, tt.stride, tt.cols)
			}
			f := l.frame()
			if f.Right() > tt.w || f.H > tt.h {
				t.Errorf("frame %+v does not fit %dx%d", f, tt.w, tt.h)
			}
		})
	}
}
