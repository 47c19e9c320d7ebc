package galton

import (
	"errors"
	"testing"

	"github.com/lixenwraith/galton/constant"
)

func TestSpawnFreshParticle(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 2, MaxParticles: 3, CellHeight: 10, CellWidth: 10}, WithSeed(1))

	if err := b.Spawn(); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if b.ActiveCount() != 1 {
		t.Fatalf("Expected 1 active particle, got %d", b.ActiveCount())
	}

	p, err := b.Particle(0)
	if err != nil {
		t.Fatalf("Particle(0) failed: %v", err)
	}
	want := Particle{PrevDirection: 0, Progress: constant.ParticleProcessLimit, Height: 1, Slot: 0}
	if p != want {
		t.Errorf("Expected %+v, got %+v", want, p)
	}
}

func TestSpawnPoolFull(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 2, MaxParticles: 2, CellHeight: 10, CellWidth: 10}, WithSeed(1))

	for i := 0; i < 2; i++ {
		if err := b.Spawn(); err != nil {
			t.Fatalf("Spawn %d failed: %v", i, err)
		}
	}
	stepN(t, b, 3)
	before0, _ := b.Particle(0)
	before1, _ := b.Particle(1)

	if err := b.Spawn(); !errors.Is(err, ErrPoolFull) {
		t.Fatalf("Expected ErrPoolFull, got %v", err)
	}

	if b.ActiveCount() != 2 {
		t.Errorf("Expected active count unchanged at 2, got %d", b.ActiveCount())
	}
	after0, _ := b.Particle(0)
	after1, _ := b.Particle(1)
	if before0 != after0 || before1 != after1 {
		t.Error("Expected particles unchanged after rejected spawn")
	}
}

func TestSpawnZeroCapacity(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 1, MaxParticles: 0, CellHeight: 10, CellWidth: 10}, WithSeed(1))

	if err := b.Spawn(); !errors.Is(err, ErrPoolFull) {
		t.Errorf("Expected ErrPoolFull on zero-capacity board, got %v", err)
	}
	if err := b.Step(); err != nil {
		t.Errorf("Expected Step on empty board to succeed, got %v", err)
	}
}

func TestStepDecrementsProgress(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 1, MaxParticles: 1, CellHeight: 10, CellWidth: 10}, WithSeed(1))
	if err := b.Spawn(); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	stepN(t, b, 5)
	p, _ := b.Particle(0)
	if want := constant.ParticleProcessLimit - 5*constant.ParticleSpeed; p.Progress != want {
		t.Errorf("Expected progress %d, got %d", want, p.Progress)
	}
	if p.Height != 1 || p.Slot != 0 || p.PrevDirection != 0 {
		t.Errorf("Expected particle still on spawn row, got %+v", p)
	}
}

func TestStepAlwaysRightExample(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 1, MaxParticles: 5, CellHeight: 10, CellWidth: 10}, WithSource(constSource(1)))
	if err := b.Spawn(); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	// Row 1 -> 2
	stepN(t, b, ticksPerRow)
	p, _ := b.Particle(0)
	if p.Height != 2 || p.Slot != 1 || p.PrevDirection != 1 || p.Progress != constant.ParticleProcessLimit {
		t.Fatalf("Expected height 2, slot 1, direction +1, full progress, got %+v", p)
	}

	// Row 2 -> 3 (terminal)
	stepN(t, b, ticksPerRow)
	p, _ = b.Particle(0)
	if p.Height != 3 || p.Slot != 2 {
		t.Fatalf("Expected height 3, slot 2, got %+v", p)
	}

	// One tick short of landing
	stepN(t, b, ticksPerRow-1)
	if b.ActiveCount() != 1 {
		t.Fatalf("Expected particle still active, got %d", b.ActiveCount())
	}

	stepN(t, b, 1)
	if b.ActiveCount() != 0 {
		t.Fatalf("Expected particle removed after landing, got %d active", b.ActiveCount())
	}

	// binIndex = (2 + 3 - 1) / 2 = 2
	want := []uint64{0, 0, 1}
	got := b.Results()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bin %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestStepScriptedWalk(t *testing.T) {
	tests := []struct {
		name  string
		draws []uint64
		bin   int
	}{
		{"all left", []uint64{0}, 0},
		{"all right", []uint64{1}, 4},
		{"right then left", []uint64{1, 0}, 2},
		{"three right one left", []uint64{1, 1, 1, 0}, 3},
		{"high bits ignored", []uint64{0xfffffffffffffffe}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{draws: tt.draws}
			b := newTestBoard(t, Config{BouncerPairs: 2, MaxParticles: 1, CellHeight: 10, CellWidth: 10}, WithSource(src))
			if err := b.Spawn(); err != nil {
				t.Fatalf("Spawn failed: %v", err)
			}

			stepN(t, b, ticksPerRow*b.ResultBins())

			if b.ActiveCount() != 0 {
				t.Fatalf("Expected particle landed, got %d active", b.ActiveCount())
			}
			if v, _ := b.Result(tt.bin); v != 1 {
				t.Errorf("Expected bin %d to hold the particle, results %v", tt.bin, b.Results())
			}
			if b.TotalResults() != 1 {
				t.Errorf("Expected exactly one landing, got %d", b.TotalResults())
			}
			if src.next != b.ResultBins()-1 {
				t.Errorf("Expected %d direction draws, got %d", b.ResultBins()-1, src.next)
			}
		})
	}
}

func TestStepSwapRemoveProcessesSwappedParticle(t *testing.T) {
	// Zero pairs: the spawn row is the terminal row, every particle lands after one row
	b := newTestBoard(t, Config{BouncerPairs: 0, MaxParticles: 4, CellHeight: 10, CellWidth: 10}, WithSeed(1))

	if err := b.Spawn(); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	stepN(t, b, 10)
	for i := 0; i < 2; i++ {
		if err := b.Spawn(); err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
	}

	// The first particle lands at index 0 and the last one is swapped into its place
	stepN(t, b, ticksPerRow-10)
	if b.ActiveCount() != 2 {
		t.Fatalf("Expected 2 particles after first landing, got %d", b.ActiveCount())
	}
	want := constant.ParticleProcessLimit - (ticksPerRow-10)*constant.ParticleSpeed
	for i := 0; i < 2; i++ {
		p, _ := b.Particle(i)
		if p.Progress != want {
			t.Errorf("Particle %d: expected progress %d, got %d", i, want, p.Progress)
		}
	}
}

func TestStepSimultaneousLandings(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 0, MaxParticles: 3, CellHeight: 10, CellWidth: 10}, WithSeed(1))
	for i := 0; i < 3; i++ {
		if err := b.Spawn(); err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
	}

	stepN(t, b, ticksPerRow-1)
	if b.ActiveCount() != 3 {
		t.Fatalf("Expected 3 in flight, got %d", b.ActiveCount())
	}

	// All three must land in the same pass
	stepN(t, b, 1)
	if b.ActiveCount() != 0 {
		t.Errorf("Expected all particles landed in one step, got %d active", b.ActiveCount())
	}
	if v, _ := b.Result(0); v != 3 {
		t.Errorf("Expected 3 in the single bin, got %d", v)
	}
}

func TestStepConservesParticles(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 3, MaxParticles: 40, CellHeight: 10, CellWidth: 10}, WithSeed(2024))

	spawned := 0
	prev := b.Results()
	for tick := 0; tick < 3000; tick++ {
		if tick%3 == 0 && spawned < 500 {
			if err := b.Spawn(); err == nil {
				spawned++
			} else if !errors.Is(err, ErrPoolFull) {
				t.Fatalf("Unexpected spawn error: %v", err)
			}
		}
		if err := b.Step(); err != nil {
			t.Fatalf("Step failed at tick %d: %v", tick, err)
		}

		cur := b.Results()
		for i := range cur {
			if cur[i] < prev[i] {
				t.Fatalf("Bin %d decreased from %d to %d", i, prev[i], cur[i])
			}
		}
		prev = cur

		if got := b.TotalResults() + uint64(b.ActiveCount()); got != uint64(spawned) {
			t.Fatalf("Tick %d: landed+active=%d, spawned=%d", tick, got, spawned)
		}
	}

	if b.ActiveCount() != 0 {
		t.Errorf("Expected all particles landed, got %d active", b.ActiveCount())
	}
}

func TestStepDistributionPeaksInCenter(t *testing.T) {
	b := newTestBoard(t, Config{BouncerPairs: 2, MaxParticles: 255, CellHeight: 10, CellWidth: 10}, WithSeed(7))

	const balls = 2000
	spawned := 0
	for spawned < balls || b.ActiveCount() > 0 {
		if spawned < balls && b.Spawn() == nil {
			spawned++
		}
		if err := b.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	r := b.Results()
	if b.TotalResults() != balls {
		t.Fatalf("Expected %d landings, got %d", balls, b.TotalResults())
	}
	// Binomial(4, 1/2) expects 125, 500, 750, 500, 125
	if r[2] <= r[1] || r[2] <= r[3] || r[1] <= r[0] || r[3] <= r[4] {
		t.Errorf("Expected a central peak, got %v", r)
	}
}

func TestStepBinResolutionFaults(t *testing.T) {
	tests := []struct {
		name string
		slot int
		want error
	}{
		{"odd parity", 1, ErrOddParity},
		{"negative bin", -4, ErrNegativeBin},
		{"bin overflow", 4, ErrBinOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, Config{BouncerPairs: 1, MaxParticles: 2, CellHeight: 10, CellWidth: 10}, WithSeed(1))
			if err := b.Spawn(); err != nil {
				t.Fatalf("Spawn failed: %v", err)
			}

			// Corrupt the record: terminal row, about to land, on a bad slot
			b.particles[0] = Particle{PrevDirection: 1, Progress: 1, Height: b.ResultBins(), Slot: tt.slot}

			err := b.Step()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if !errors.Is(b.Err(), tt.want) {
				t.Errorf("Expected sticky fault %v, got %v", tt.want, b.Err())
			}
			if b.TotalResults() != 0 {
				t.Errorf("Expected no bin incremented, got %v", b.Results())
			}

			// Fault is fatal for the board
			if err := b.Step(); !errors.Is(err, tt.want) {
				t.Errorf("Expected Step to keep failing, got %v", err)
			}
			if err := b.Spawn(); !errors.Is(err, tt.want) {
				t.Errorf("Expected Spawn to keep failing, got %v", err)
			}
		})
	}
}
