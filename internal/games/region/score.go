package region

import "strconv"

// Tally is the number of cells each side owns.
type Tally struct {
	Red  int
	Blue int
}

// Total returns the number of cells counted.
func (t Tally) Total() int {
	return t.Red + t.Blue
}

// Of returns the count for one side.
func (t Tally) Of(c Color) int {
	if c == Blue {
		return t.Blue
	}
	return t.Red
}

// Leader returns the side with more cells, and false on a tie.
func (t Tally) Leader() (Color, bool) {
	switch {
	case t.Red > t.Blue:
		return Red, true
	case t.Blue > t.Red:
		return Blue, true
	default:
		return Red, false
	}
}

// CountAll recounts both sides from the grid.
func CountAll(g *Grid) Tally {
	return Tally{Red: g.Count(Red), Blue: g.Count(Blue)}
}

// ScoreCounter is the displayed score text of one side.
type ScoreCounter struct {
	Color Color
	Label string
	Text  string
}

// ScoreBoard holds one counter per side. Update only rewrites display text.
type ScoreBoard struct {
	Counters [2]ScoreCounter
}

// NewScoreBoard creates counters showing zero.
func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		Counters: [2]ScoreCounter{
			{Color: Red, Label: "RED SCORE", Text: "0"},
			{Color: Blue, Label: "BLUE SCORE", Text: "0"},
		},
	}
}

// Update recounts both sides from the current grid. Nothing is cached.
func (b *ScoreBoard) Update(g *Grid) {
	t := CountAll(g)
	for i := range b.Counters {
		c := &b.Counters[i]
		c.Text = strconv.Itoa(t.Of(c.Color))
	}
}
