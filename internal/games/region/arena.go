package region

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/region-arcade/internal/core"
)

// ErrDegenerateArena is returned when the configured arena has no area.
var ErrDegenerateArena = errors.New("region: degenerate arena")

// Arena is the bounded square playfield centered at the origin.
// It is immutable once constructed.
type Arena struct {
	Left, Right   float64
	Bottom, Top   float64
	WallThickness float64
}

// NewArena derives the arena bounds from the brick width and grid count.
// The bounds pass through the centers of the outermost cells of NewGrid.
func NewArena(brickWidth float64, gridCount int, wallThickness float64) (Arena, error) {
	if gridCount < 1 || brickWidth <= 0 || wallThickness < 0 {
		return Arena{}, fmt.Errorf("%w: brick width %g, grid count %d, wall thickness %g",
			ErrDegenerateArena, brickWidth, gridCount, wallThickness)
	}

	left := -float64(gridCount) / 2 * brickWidth
	a := Arena{
		Left:          left,
		Right:         -left,
		Bottom:        left,
		Top:           -left,
		WallThickness: wallThickness,
	}
	if a.Width() <= 0 || a.Height() <= 0 {
		return Arena{}, fmt.Errorf("%w: span %g x %g (brick width %g, grid count %d)",
			ErrDegenerateArena, a.Width(), a.Height(), brickWidth, gridCount)
	}
	return a, nil
}

// Width returns the horizontal span.
func (a Arena) Width() float64 {
	return a.Right - a.Left
}

// Height returns the vertical span.
func (a Arena) Height() float64 {
	return a.Top - a.Bottom
}

// WallLocation says which side of the arena a wall closes.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// WallLocations lists all four walls.
var WallLocations = [4]WallLocation{WallLeft, WallRight, WallBottom, WallTop}

// String returns the wall name.
func (l WallLocation) String() string {
	switch l {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// Position returns the wall center: the midpoint of the arena edge.
func (l WallLocation) Position(a Arena) core.Vec2 {
	switch l {
	case WallLeft:
		return core.V(a.Left, 0)
	case WallRight:
		return core.V(a.Right, 0)
	case WallBottom:
		return core.V(0, a.Bottom)
	default:
		return core.V(0, a.Top)
	}
}

// Size returns the wall extent. The long axis is the arena span plus the
// thickness so that adjoining walls overlap at the corners.
func (l WallLocation) Size(a Arena) core.Vec2 {
	switch l {
	case WallLeft, WallRight:
		return core.V(a.WallThickness, a.Height()+a.WallThickness)
	default:
		return core.V(a.Width()+a.WallThickness, a.WallThickness)
	}
}

// Wall is a static collider on one side of the arena.
type Wall struct {
	Location WallLocation
	Box      core.Box
}

// Walls builds the four wall colliders.
func (a Arena) Walls() [4]Wall {
	var walls [4]Wall
	for i, loc := range WallLocations {
		walls[i] = Wall{
			Location: loc,
			Box:      core.NewBox(loc.Position(a), loc.Size(a)),
		}
	}
	return walls
}
