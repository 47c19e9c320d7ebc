package render

import "github.com/gdamore/tcell/v2"

// cyclePhase is which channel moves and in which direction
type cyclePhase uint8

const (
	cycleBlueDown cyclePhase = iota
	cycleGreenDown
	cycleBlueUp
	cycleRedDown
	cycleGreenUp
	cycleRedUp
)

// ColorCycle walks the RGB cube edges one unit per Next:
// blue down, green down, blue up, red down, green up, red up, then repeats
// Each phase ends when its channel reaches 0 or 255
type ColorCycle struct {
	r, g, b uint8
	phase   cyclePhase
}

// NewColorCycle starts the walk at mid gray
func NewColorCycle() *ColorCycle {
	return &ColorCycle{r: 127, g: 127, b: 127, phase: cycleBlueDown}
}

// RGB returns the current channels
func (c *ColorCycle) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Color returns the current color
func (c *ColorCycle) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
}

// Next advances the walk by one unit
func (c *ColorCycle) Next() {
	switch c.phase {
	case cycleBlueDown:
		c.b--
		if c.b == 0 {
			c.phase = cycleGreenDown
		}
	case cycleGreenDown:
		c.g--
		if c.g == 0 {
			c.phase = cycleBlueUp
		}
	case cycleBlueUp:
		c.b++
		if c.b == 255 {
			c.phase = cycleRedDown
		}
	case cycleRedDown:
		c.r--
		if c.r == 0 {
			c.phase = cycleGreenUp
		}
	case cycleGreenUp:
		c.g++
		if c.g == 255 {
			c.phase = cycleRedUp
		}
	case cycleRedUp:
		c.r++
		if c.r == 255 {
			c.phase = cycleBlueDown
		}
	}
}
