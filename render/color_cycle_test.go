package render

import "testing"

func advance(c *ColorCycle, n int) {
	for i := 0; i < n; i++ {
		c.Next()
	}
}

func TestColorCycleWalk(t *testing.T) {
	c := NewColorCycle()

	steps := []struct {
		n       int
		r, g, b uint8
	}{
		{0, 127, 127, 127},
		{127, 127, 127, 0},   // blue down
		{127, 127, 0, 0},     // green down
		{255, 127, 0, 255},   // blue up
		{127, 0, 0, 255},     // red down
		{255, 0, 255, 255},   // green up
		{255, 255, 255, 255}, // red up
		{255, 255, 255, 0},   // blue down again, now from full
	}

	for i, s := range steps {
		advance(c, s.n)
		r, g, b := c.RGB()
		if r != s.r || g != s.g || b != s.b {
			t.Fatalf("Step %d: expected (%d,%d,%d), got (%d,%d,%d)", i, s.r, s.g, s.b, r, g, b)
		}
	}
}

func TestColorCycleNeverWraps(t *testing.T) {
	c := NewColorCycle()
	pr, pg, pb := c.RGB()
	for i := 0; i < 5000; i++ {
		c.Next()
		r, g, b := c.RGB()
		moved := absDiff(r, pr) + absDiff(g, pg) + absDiff(b, pb)
		if moved != 1 {
			t.Fatalf("Step %d: expected exactly one channel to move by one, got (%d,%d,%d) -> (%d,%d,%d)", i, pr, pg, pb, r, g, b)
		}
		pr, pg, pb = r, g, b
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
