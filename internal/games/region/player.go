package region

import "github.com/vovakirdan/region-arcade/internal/core"

// Player is a bouncing circle that captures cells of the other color.
type Player struct {
	Color   Color
	Pos     core.Vec2
	Heading core.Vec2 // world units per second
	Radius  float64
}

// NewPlayer creates a player of the given side.
func NewPlayer(c Color, pos, heading core.Vec2, radius float64) Player {
	return Player{Color: c, Pos: pos, Heading: heading, Radius: radius}
}

// Bounds returns the player's bounding circle.
func (p *Player) Bounds() core.Circle {
	return core.Circle{Center: p.Pos, Radius: p.Radius}
}

// BounceX reverses horizontal heading.
func (p *Player) BounceX() {
	p.Heading.X = -p.Heading.X
}

// BounceY reverses vertical heading.
func (p *Player) BounceY() {
	p.Heading.Y = -p.Heading.Y
}

// Integrate advances the player by heading * dt seconds.
func Integrate(p *Player, dt float64) {
	p.Pos = p.Pos.Add(p.Heading.Scale(dt))
}
