package region

import (
	"fmt"

	"github.com/vovakirdan/region-arcade/internal/core"
)

// Color identifies a side: the owner of a cell and the identity of a player.
// A player's break color is its own Color; it captures cells of the other one.
type Color uint8

const (
	Red Color = iota
	Blue
)

// Colors lists both sides in processing order.
var Colors = [2]Color{Red, Blue}

// String returns the lowercase side name used in logs and storage.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == Red {
		return Blue
	}
	return Red
}

// Tint is the color a cell is painted when owned by c.
func (c Color) Tint() core.Color {
	if c == Blue {
		return core.ColorGray
	}
	return core.ColorMaroon
}

// Marker is the color the player of side c is drawn with.
func (c Color) Marker() core.Color {
	if c == Blue {
		return core.ColorOlive
	}
	return core.ColorPurple
}
