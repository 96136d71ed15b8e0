package region

import "github.com/vovakirdan/region-arcade/internal/core"

// Cell is one capturable square of the arena floor.
// Box never changes after the grid is built; Owner and Tint change on capture.
type Cell struct {
	IX, IY int
	Box    core.Box
	Owner  Color
	Tint   core.Color
}

// Grid holds the fixed set of cells, stored row-major (iy, then ix).
type Grid struct {
	size  int // cells per side
	width float64
	cells []Cell
}

// NewGrid builds a (gridCount+1)x(gridCount+1) grid centered on the origin.
// Cells right of the center column start Blue, the rest start Red.
func NewGrid(gridCount int, brickWidth float64) *Grid {
	size := gridCount + 1
	mid := float64(gridCount) / 2
	g := &Grid{
		size:  size,
		width: brickWidth,
		cells: make([]Cell, 0, size*size),
	}

	for iy := 0; iy < size; iy++ {
		y := (float64(iy) - mid) * brickWidth
		for ix := 0; ix < size; ix++ {
			x := (float64(ix) - mid) * brickWidth
			owner := Red
			if x > 0 {
				owner = Blue
			}
			g.cells = append(g.cells, Cell{
				IX:    ix,
				IY:    iy,
				Box:   core.NewBox(core.V(x, y), core.V(brickWidth, brickWidth)),
				Owner: owner,
				Tint:  owner.Tint(),
			})
		}
	}
	return g
}

// Size returns the number of cells per side.
func (g *Grid) Size() int {
	return g.size
}

// BrickWidth returns the edge length of a cell.
func (g *Grid) BrickWidth() float64 {
	return g.width
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cells exposes the cells for iteration. Callers outside the package
// must treat the slice as read-only.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// At returns the cell at grid index (ix, iy), or nil when out of range.
func (g *Grid) At(ix, iy int) *Cell {
	if ix < 0 || ix >= g.size || iy < 0 || iy >= g.size {
		return nil
	}
	return &g.cells[iy*g.size+ix]
}

// Count returns how many cells are currently owned by c.
func (g *Grid) Count(c Color) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Owner == c {
			n++
		}
	}
	return n
}

// capture hands the cell to c and repaints it.
func (cell *Cell) capture(c Color) {
	cell.Owner = c
	cell.Tint = c.Tint()
}
