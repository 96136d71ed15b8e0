package region

import (
	"math"

	"github.com/vovakirdan/region-arcade/internal/core"
)

// CollisionSide indicates which side of a box a circle hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

// String returns the side name.
func (s CollisionSide) String() string {
	switch s {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Horizontal reports whether the hit reflects the X heading.
func (s CollisionSide) Horizontal() bool {
	return s == CollisionLeft || s == CollisionRight
}

// Collide tests a circle against a box and classifies the side of impact.
// The offset from the box's closest point to the circle center decides the
// side: a dominant X component means Left/Right, otherwise Top/Bottom with
// offset.Y > 0 meaning Top. A center inside the box has a zero offset and
// classifies as Bottom.
func Collide(c core.Circle, b core.Box) CollisionSide {
	if !c.IntersectsBox(b) {
		return CollisionNone
	}

	offset := c.Center.Sub(b.ClosestPoint(c.Center))
	if math.Abs(offset.X) > math.Abs(offset.Y) {
		if offset.X < 0 {
			return CollisionLeft
		}
		return CollisionRight
	}
	if offset.Y > 0 {
		return CollisionTop
	}
	return CollisionBottom
}

// ApplyBounce reflects the heading component orthogonal to the hit side.
func ApplyBounce(p *Player, side CollisionSide) {
	switch {
	case side == CollisionNone:
	case side.Horizontal():
		p.BounceX()
	default:
		p.BounceY()
	}
}

// Capture records a cell changing hands during a tick.
type Capture struct {
	IX, IY int
	By     Color
	Side   CollisionSide
}

// ResolveCells runs the cell pass for one player. Every cell owned by the
// other color that the player overlaps is captured and reflects the player;
// cells the player already owns are transparent. Overlaps are applied one
// after another in grid order, so two hits on the same axis cancel out.
func ResolveCells(p *Player, g *Grid) []Capture {
	var captures []Capture
	bounds := p.Bounds()

	for i := range g.cells {
		cell := &g.cells[i]
		side := Collide(bounds, cell.Box)
		if side == CollisionNone || cell.Owner != p.Color.Other() {
			continue
		}

		ApplyBounce(p, side)
		cell.capture(p.Color)
		captures = append(captures, Capture{IX: cell.IX, IY: cell.IY, By: p.Color, Side: side})
	}
	return captures
}

// WallHit records a player touching a wall.
type WallHit struct {
	Wall WallLocation
	Side CollisionSide
}

// ResolveWalls runs the wall pass for one player. Walls always reflect.
func ResolveWalls(p *Player, walls [4]Wall) []WallHit {
	var hits []WallHit
	bounds := p.Bounds()

	for _, w := range walls {
		side := Collide(bounds, w.Box)
		if side == CollisionNone {
			continue
		}
		ApplyBounce(p, side)
		hits = append(hits, WallHit{Wall: w.Location, Side: side})
	}
	return hits
}

// Resolve runs the cell pass then the wall pass for one player.
func Resolve(p *Player, g *Grid, walls [4]Wall) ([]Capture, []WallHit) {
	captures := ResolveCells(p, g)
	hits := ResolveWalls(p, walls)
	return captures, hits
}
