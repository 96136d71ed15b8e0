package region

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/region-arcade/internal/core"
)

// ErrInvalidSettings is returned for settings that cannot produce a playable world.
var ErrInvalidSettings = errors.New("region: invalid settings")

// Settings fully describes an initial world.
type Settings struct {
	BrickWidth    float64
	GridCount     int
	WallThickness float64
	Radius        float64
	RedStart      core.Vec2
	RedHeading    core.Vec2
	BlueStart     core.Vec2
	BlueHeading   core.Vec2
}

// DefaultSettings is the 31x31 arena with both players a quarter of the way
// in from their side wall.
func DefaultSettings() Settings {
	return PlacedSettings(20, 30, 40, 10, 0, core.V(100, 100), core.V(-100, -100))
}

// PlacedSettings places Red startColumn cells in from the left wall on the
// horizontal center line and mirrors Blue on the right. A startColumn of
// zero or less selects gridCount/4.
func PlacedSettings(brickWidth float64, gridCount int, wallThickness, radius float64,
	startColumn int, redHeading, blueHeading core.Vec2,
) Settings {
	if startColumn <= 0 {
		startColumn = gridCount / 4
	}
	redX := -float64(gridCount)/2*brickWidth + float64(startColumn)*brickWidth
	return Settings{
		BrickWidth:    brickWidth,
		GridCount:     gridCount,
		WallThickness: wallThickness,
		Radius:        radius,
		RedStart:      core.V(redX, 0),
		RedHeading:    redHeading,
		BlueStart:     core.V(-redX, 0),
		BlueHeading:   blueHeading,
	}
}

// World owns every entity of a match: one slice of cells, four walls and
// exactly two players held in named slots.
type World struct {
	Arena Arena
	Walls [4]Wall
	Grid  *Grid
	Red   Player
	Blue  Player

	tick uint64
}

// NewWorld spawns the grid, walls and both players.
func NewWorld(s Settings) (*World, error) {
	arena, err := NewArena(s.BrickWidth, s.GridCount, s.WallThickness)
	if err != nil {
		return nil, err
	}
	if s.Radius <= 0 {
		return nil, fmt.Errorf("%w: player radius %g", ErrInvalidSettings, s.Radius)
	}

	return &World{
		Arena: arena,
		Walls: arena.Walls(),
		Grid:  NewGrid(s.GridCount, s.BrickWidth),
		Red:   NewPlayer(Red, s.RedStart, s.RedHeading, s.Radius),
		Blue:  NewPlayer(Blue, s.BlueStart, s.BlueHeading, s.Radius),
	}, nil
}

// Player returns the slot for side c.
func (w *World) Player(c Color) *Player {
	switch c {
	case Red:
		return &w.Red
	case Blue:
		return &w.Blue
	default:
		panic(fmt.Sprintf("region: no player for %v", c))
	}
}

// TickCount returns the number of completed ticks.
func (w *World) TickCount() uint64 {
	return w.tick
}

// TickReport lists what happened during one tick.
type TickReport struct {
	Tick     uint64
	Captures []Capture
	WallHits []WallHit
}

// Tick advances the world by one fixed step: both players move, then Red is
// resolved against all cells and walls, then Blue. Collision uses the
// positions after this tick's movement.
func (w *World) Tick(dt float64) TickReport {
	for _, c := range Colors {
		Integrate(w.Player(c), dt)
	}

	var report TickReport
	for _, c := range Colors {
		captures, hits := Resolve(w.Player(c), w.Grid, w.Walls)
		report.Captures = append(report.Captures, captures...)
		report.WallHits = append(report.WallHits, hits...)
	}

	w.tick++
	report.Tick = w.tick
	return report
}

// Tally counts cells for both sides.
func (w *World) Tally() Tally {
	return CountAll(w.Grid)
}
