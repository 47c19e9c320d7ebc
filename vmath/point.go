package vmath

// Point is an integer lattice or screen coordinate
type Point struct {
	X, Y int
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the point mirrored through the origin
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Float converts to a PointF without loss
func (p Point) Float() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// PointF is a render-space coordinate with sub-cell precision
type PointF struct {
	X, Y float64
}

// Add returns p + q
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// Round snaps to the nearest integer cell, halves away from zero
func (p PointF) Round() Point {
	return Point{X: roundHalfAway(p.X), Y: roundHalfAway(p.Y)}
}

func roundHalfAway(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}
