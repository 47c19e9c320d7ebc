package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/galton/vmath"
)

// ErrInvalidProgress is returned when an in-flight fraction is outside [0, 1]
var ErrInvalidProgress = errors.New("progress fraction outside [0, 1]")

// BasePosition maps lattice (slot, depth) to a point relative to the spawn origin
// x = floor(slot*cellWidth/2): arithmetic shift keeps negative slots symmetric with the C layout
func BasePosition(slot, depth, cellHeight, cellWidth int) vmath.Point {
	return vmath.Point{
		X: (slot * cellWidth) >> 1,
		Y: depth * cellHeight,
	}
}

// InterpolatedPosition returns the in-flight position of a ball bouncing into (slot, depth)
// t is the remaining fraction of the row transition: 1 at the previous peg, 0 on arrival
// The vertical offset is linear in t, the horizontal offset quadratic and signed by prevDirection
func InterpolatedPosition(
	origin vmath.PointF,
	slot, depth int,
	cellHeight, cellWidth int,
	prevDirection int,
	t float64,
) (vmath.PointF, error) {
	// Negated range check also rejects NaN
	if !(t >= 0 && t <= 1) {
		return vmath.PointF{}, fmt.Errorf("%w: %v", ErrInvalidProgress, t)
	}

	base := BasePosition(slot, depth, cellHeight, cellWidth)
	return vmath.PointF{
		X: origin.X + float64(base.X) - float64(prevDirection)*t*t*float64(cellWidth)/2,
		Y: origin.Y + float64(base.Y) - t*float64(cellHeight),
	}, nil
}
