package region

import (
	"math"

	"github.com/vovakirdan/region-arcade/internal/core"
)

// Visual characters for rendering
const (
	CellGlyph   = '█'
	PlayerGlyph = '●'
)

// cellCols is the number of terminal columns per displayed cell.
const cellCols = 2

// fieldLayout maps grid indices onto screen cells. When the grid does not
// fit, every stride-th cell is shown.
type fieldLayout struct {
	x0, y0 int
	stride int
	cols   int
	rows   int
}

func (l fieldLayout) frame() core.Rect {
	return core.NewRect(l.x0, l.y0, l.cols*cellCols+2, l.rows+2)
}

// computeLayout fits a size x size grid plus its frame into w x h.
// ok is false when not even a single cell fits.
func computeLayout(size, w, h int) (fieldLayout, bool) {
	maxCols := (w - 2) / cellCols
	maxRows := h - 2
	if maxCols < 1 || maxRows < 1 || size < 1 {
		return fieldLayout{}, false
	}

	stride := 1
	for ceilDiv(size, stride) > maxCols || ceilDiv(size, stride) > maxRows {
		stride++
	}
	n := ceilDiv(size, stride)
	l := fieldLayout{stride: stride, cols: n, rows: n}
	l.x0 = (w - (n*cellCols + 2)) / 2
	return l, true
}

// screenPos returns the screen cell of grid index (ix, iy). Higher iy is
// drawn nearer the top.
func (l fieldLayout) screenPos(size, ix, iy int) (int, int) {
	col := ix / l.stride
	row := (size - 1 - iy) / l.stride
	return l.x0 + 1 + col*cellCols, l.y0 + 1 + row
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Render draws the arena, both score texts and the return control.
// Game state is read once so a concurrent Finish cannot clear it mid-frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, board, control := g.world, g.board, g.control
	if w == nil {
		dst.DrawTextCentered(dst.Height()/2, "Match over")
		return
	}

	// HUD row on top, control row at the bottom
	renderHUD(dst, board)
	renderControl(dst, control)

	size := w.Grid.Size()
	layout, ok := computeLayout(size, dst.Width(), dst.Height()-2)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	layout.y0 = 1

	renderCells(dst, layout, size, w.Grid)
	dst.DrawBox(layout.frame(), core.ColorSilver)
	for _, c := range Colors {
		renderPlayer(dst, layout, size, w.Grid.BrickWidth(), w.Player(c))
	}

	if g.paused {
		dst.DrawColoredText((dst.Width()-len("PAUSED"))/2, dst.Height()/2, "PAUSED", core.ColorYellow)
	}
}

func renderHUD(dst *core.Screen, board *ScoreBoard) {
	if board == nil {
		return
	}
	red := board.Counters[0]
	blue := board.Counters[1]

	left := red.Label + " " + red.Text
	right := blue.Label + " " + blue.Text
	dst.DrawColoredText(1, 0, left, core.ColorNavy)
	dst.DrawColoredText(dst.Width()-len(right)-1, 0, right, core.ColorNavy)
}

func renderControl(dst *core.Screen, control *ReturnControl) {
	if control == nil {
		return
	}
	text := "[" + control.Hotkey + "] " + control.Label
	dst.DrawColoredText(1, dst.Height()-1, text, core.ColorWhite)
}

func renderCells(dst *core.Screen, l fieldLayout, size int, grid *Grid) {
	for _, cell := range grid.Cells() {
		if cell.IX%l.stride != 0 || cell.IY%l.stride != 0 {
			continue
		}
		x, y := l.screenPos(size, cell.IX, cell.IY)
		for i := 0; i < cellCols; i++ {
			dst.SetColored(x+i, y, CellGlyph, cell.Tint)
		}
	}
}

func renderPlayer(dst *core.Screen, l fieldLayout, size int, brick float64, p *Player) {
	mid := float64(size-1) / 2
	ix := core.Clamp(int(math.Round(p.Pos.X/brick+mid)), 0, size-1)
	iy := core.Clamp(int(math.Round(p.Pos.Y/brick+mid)), 0, size-1)

	// Snap to a displayed cell
	ix -= ix % l.stride
	iy -= iy % l.stride
	x, y := l.screenPos(size, ix, iy)
	dst.SetColored(x, y, PlayerGlyph, p.Color.Marker())
}
