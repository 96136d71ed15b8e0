package region

import (
	"errors"
	"testing"

	"github.com/vovakirdan/region-arcade/internal/core"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		count     int
		thickness float64
		left      float64
	}{
		{"default", 20, 30, 40, -300},
		{"single step", 20, 1, 40, -10},
		{"odd count", 20, 7, 40, -70},
		{"no walls", 5, 4, 0, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArena(tt.width, tt.count, tt.thickness)
			if err != nil {
				t.Fatalf("NewArena() failed: %v", err)
			}
			if a.Left != tt.left || a.Right != -tt.left || a.Bottom != tt.left || a.Top != -tt.left {
				t.Errorf("bounds = %+v, expected symmetric around %v", a, tt.left)
			}
			if a.Width() <= 0 || a.Height() <= 0 {
				t.Errorf("span %v x %v should be positive", a.Width(), a.Height())
			}
		})
	}
}

func TestNewArenaDegenerate(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		count     int
		thickness float64
	}{
		{"zero count", 20, 0, 40},
		{"negative count", 20, -2, 40},
		{"zero width", 0, 30, 40},
		{"negative width", -20, 30, 40},
		{"negative thickness", 20, 30, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArena(tt.width, tt.count, tt.thickness)
			if !errors.Is(err, ErrDegenerateArena) {
				t.Errorf("NewArena() error = %v, expected ErrDegenerateArena", err)
			}
		})
	}
}

func TestArenaWalls(t *testing.T) {
	a, err := NewArena(20, 30, 40)
	if err != nil {
		t.Fatal(err)
	}
	walls := a.Walls()

	tests := []struct {
		loc    WallLocation
		center core.Vec2
		size   core.Vec2
	}{
		{WallLeft, core.V(-300, 0), core.V(40, 640)},
		{WallRight, core.V(300, 0), core.V(40, 640)},
		{WallBottom, core.V(0, -300), core.V(640, 40)},
		{WallTop, core.V(0, 300), core.V(640, 40)},
	}

	for i, tt := range tests {
		t.Run(tt.loc.String(), func(t *testing.T) {
			w := walls[i]
			if w.Location != tt.loc {
				t.Fatalf("walls[%d] = %v, expected %v", i, w.Location, tt.loc)
			}
			if w.Box.Center != tt.center {
				t.Errorf("center = %+v, expected %+v", w.Box.Center, tt.center)
			}
			if w.Box.Size() != tt.size {
				t.Errorf("size = %+v, expected %+v", w.Box.Size(), tt.size)
			}
		})
	}
}

func TestWallsCloseCorners(t *testing.T) {
	a, _ := NewArena(20, 10, 40)
	walls := a.Walls()

	// The top-left corner point lies inside both the left and top wall
	corner := core.Circle{Center: core.V(a.Left, a.Top), Radius: 1}
	if !corner.IntersectsBox(walls[WallLeft].Box) || !corner.IntersectsBox(walls[WallTop].Box) {
		t.Error("adjoining walls should overlap at the corner")
	}
}
