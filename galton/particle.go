package galton

import (
	"fmt"

	"github.com/lixenwraith/galton/constant"
)

// Particle is one ball descending between its previous bounce row and the next
type Particle struct {
	PrevDirection int // -1, 0 or +1; 0 only before the first bounce
	Progress      int // remaining progress through the current row transition, (0, processLimit]
	Height        int // row index, 1 at the spawn peg, resultBins at the bins
	Slot          int // signed lattice column, changes by ±1 per completed row
}

// Spawn appends a particle at the top peg
// Returns ErrPoolFull when the pool is at capacity, leaving the board unchanged
func (b *Board) Spawn() error {
	if b.destroyed {
		return ErrBoardDestroyed
	}
	if b.fault != nil {
		return b.fault
	}
	if b.active == len(b.particles) {
		return fmt.Errorf("%w: %d/%d active", ErrPoolFull, b.active, len(b.particles))
	}

	b.particles[b.active] = Particle{
		PrevDirection: constant.DirectionNone,
		Progress:      b.processLimit,
		Height:        1,
		Slot:          0,
	}
	b.active++
	return nil
}

// Particle returns a copy of the particle at index i
// Indices are not stable across Step: landed particles are replaced by the last live one
func (b *Board) Particle(i int) (Particle, error) {
	if b.destroyed {
		return Particle{}, ErrBoardDestroyed
	}
	if i < 0 || i >= b.active {
		return Particle{}, fmt.Errorf("%w: particle %d of %d", ErrIndexOutOfRange, i, b.active)
	}
	return b.particles[i], nil
}
