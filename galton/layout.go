package galton

import (
	"github.com/lixenwraith/galton/physics"
	"github.com/lixenwraith/galton/vmath"
)

// buildBouncerLayout walks interior rows bottom-up, h = resultBins-1 .. 1
// Row h holds h pegs on slots -(h-1)..(h-1) step 2: odd rows start with the centered peg,
// even rows have none at slot 0; every other peg is emitted as a (+k, -k) pair
func buildBouncerLayout(cfg Config) []vmath.Point {
	pegs := make([]vmath.Point, 0, cfg.BouncerCount())

	for h := cfg.ResultBins() - 1; h > 0; h-- {
		k := 1
		if h&1 != 0 {
			pegs = append(pegs, physics.BasePosition(0, h, cfg.CellHeight, cfg.CellWidth))
			k = 2
		}
		for ; k < h; k += 2 {
			pegs = append(pegs,
				physics.BasePosition(k, h, cfg.CellHeight, cfg.CellWidth),
				physics.BasePosition(-k, h, cfg.CellHeight, cfg.CellWidth),
			)
		}
	}

	return pegs
}
