package region

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/region-arcade/internal/core"
)

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	RedPos      core.Vec2
	RedHeading  core.Vec2
	BluePos     core.Vec2
	BlueHeading core.Vec2

	// Owners in grid order (row-major), one byte per cell
	Owners []uint8

	RedCells  int
	BlueCells int
}

// Snapshot captures the world state.
func (w *World) Snapshot() Snapshot {
	cells := w.Grid.Cells()
	owners := make([]uint8, len(cells))
	for i := range cells {
		owners[i] = uint8(cells[i].Owner)
	}
	t := w.Tally()

	return Snapshot{
		Tick:        w.tick,
		RedPos:      w.Red.Pos,
		RedHeading:  w.Red.Heading,
		BluePos:     w.Blue.Pos,
		BlueHeading: w.Blue.Heading,
		Owners:      owners,
		RedCells:    t.Red,
		BlueCells:   t.Blue,
	}
}

// Snapshot returns the current game state, or an empty snapshot after Finish.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}

// Hash returns an FNV-64a digest of the snapshot for determinism testing.
// Floats are hashed by their exact bit pattern.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putVec := func(v core.Vec2) {
		put(math.Float64bits(v.X))
		put(math.Float64bits(v.Y))
	}

	put(snap.Tick)
	putVec(snap.RedPos)
	putVec(snap.RedHeading)
	putVec(snap.BluePos)
	putVec(snap.BlueHeading)
	put(uint64(snap.RedCells))  //#nosec G115 -- hash computation
	put(uint64(snap.BlueCells)) //#nosec G115 -- hash computation
	_, _ = h.Write(snap.Owners)

	return h.Sum64()
}
