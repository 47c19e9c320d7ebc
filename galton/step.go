package galton

import (
	"fmt"

	"github.com/lixenwraith/galton/constant"
)

// Step advances every active particle by one tick
//
// Each particle loses speed progress. A particle whose progress runs out either lands,
// when it is on the terminal row, or bounces onto the next row with a fresh random direction.
// Landed particles are removed by swapping in the last live particle without advancing the
// cursor, so the swapped-in particle, not yet visited this tick, is processed in the same pass.
// Every particle present at the start of the call is therefore advanced exactly once.
//
// A bin resolution error leaves the board faulted: Step and Spawn keep returning it
func (b *Board) Step() error {
	if b.destroyed {
		return ErrBoardDestroyed
	}
	if b.fault != nil {
		return b.fault
	}

	i := 0
	for i < b.active {
		p := &b.particles[i]
		p.Progress -= b.speed
		if p.Progress > 0 {
			i++
			continue
		}

		if p.Height == b.resultBins {
			bin, err := b.binIndex(p.Slot)
			if err != nil {
				b.fault = fmt.Errorf("particle %d: %w", i, err)
				return b.fault
			}
			b.results[bin]++

			// Swap with last alive particle
			b.active--
			b.particles[i] = b.particles[b.active]
			continue
		}

		p.Height++
		p.Progress = b.processLimit
		p.PrevDirection = b.bounceDirection()
		p.Slot += p.PrevDirection
		i++
	}

	return nil
}

// binIndex remaps a terminal slot in -(resultBins-1)..(resultBins-1) step 2 onto 0..resultBins-1
func (b *Board) binIndex(slot int) (int, error) {
	shifted := slot + b.resultBins - 1
	if shifted&1 != 0 {
		return 0, fmt.Errorf("%w: slot %d", ErrOddParity, slot)
	}

	bin := shifted / 2
	switch {
	case bin < 0:
		return 0, fmt.Errorf("%w: slot %d maps to bin %d", ErrNegativeBin, slot, bin)
	case bin >= b.resultBins:
		return 0, fmt.Errorf("%w: slot %d maps to bin %d of %d", ErrBinOverflow, slot, bin, b.resultBins)
	}
	return bin, nil
}

// bounceDirection draws -1 or +1 with equal weight from the low bit of the source
func (b *Board) bounceDirection() int {
	if b.rng.Uint64()&1 == 1 {
		return constant.DirectionRight
	}
	return constant.DirectionLeft
}
