package galton

import (
	"testing"

	"github.com/lixenwraith/galton/constant"
	"github.com/lixenwraith/galton/vmath"
)

var zeroOrigin = vmath.PointF{}

// ticksPerRow is the number of Step calls a particle spends on one row transition
const ticksPerRow = (constant.ParticleProcessLimit + constant.ParticleSpeed - 1) / constant.ParticleSpeed

// constSource always returns the same value; 1 bounces right, 0 bounces left
type constSource uint64

func (s constSource) Uint64() uint64 { return uint64(s) }

// scriptedSource replays a fixed sequence of draws, cycling when exhausted
type scriptedSource struct {
	draws []uint64
	next  int
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func newTestBoard(t *testing.T, cfg Config, opts ...Option) *Board {
	t.Helper()
	b, err := NewBoard(cfg, opts...)
	if err != nil {
		t.Fatalf("NewBoard(%+v) failed: %v", cfg, err)
	}
	return b
}

func stepN(t *testing.T, b *Board, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := b.Step(); err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
	}
}
