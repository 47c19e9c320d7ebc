package galton

import (
	"fmt"

	"github.com/lixenwraith/galton/physics"
	"github.com/lixenwraith/galton/vmath"
)

// PlotParticle returns the render-space position of particle i offset from origin
// The in-flight fraction is progress/processLimit, 1 at the previous peg and 0 on arrival
func (b *Board) PlotParticle(i int, origin vmath.PointF) (vmath.PointF, error) {
	if b.destroyed {
		return vmath.PointF{}, ErrBoardDestroyed
	}
	if i < 0 || i >= b.active {
		return vmath.PointF{}, fmt.Errorf("%w: particle %d of %d", ErrIndexOutOfRange, i, b.active)
	}

	p := &b.particles[i]
	t := float64(p.Progress) / float64(b.processLimit)
	pos, err := physics.InterpolatedPosition(
		origin,
		p.Slot,
		p.Height,
		b.cfg.CellHeight,
		b.cfg.CellWidth,
		p.PrevDirection,
		t,
	)
	if err != nil {
		return vmath.PointF{}, fmt.Errorf("particle %d: %w", i, err)
	}
	return pos, nil
}

// PlotResultBin returns the resting anchor of bin i on the terminal row, offset from origin
func (b *Board) PlotResultBin(i int, origin vmath.PointF) (vmath.PointF, error) {
	if b.destroyed {
		return vmath.PointF{}, ErrBoardDestroyed
	}
	if i < 0 || i >= b.resultBins {
		return vmath.PointF{}, fmt.Errorf("%w: bin %d of %d", ErrIndexOutOfRange, i, b.resultBins)
	}

	slot := 1 + 2*i - b.resultBins
	base := physics.BasePosition(slot, b.resultBins, b.cfg.CellHeight, b.cfg.CellWidth)
	return origin.Add(base.Float()), nil
}
