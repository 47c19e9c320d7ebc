package galton

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/galton/constant"
	"github.com/lixenwraith/galton/vmath"
)

// Config is fixed at construction
type Config struct {
	BouncerPairs int // P, paired bouncer rows, 0..MaxBouncerPairs
	MaxParticles int // M, pool capacity, 0..MaxParticlesLimit
	CellHeight   int // Ch, render units per row, > 0
	CellWidth    int // Cw, render units per two slots, > 0
}

// Validate reports the first violated bound wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.BouncerPairs < 0 || c.BouncerPairs > constant.MaxBouncerPairs:
		return fmt.Errorf("%w: bouncer pairs %d not in [0, %d]", ErrInvalidConfig, c.BouncerPairs, constant.MaxBouncerPairs)
	case c.MaxParticles < 0 || c.MaxParticles > constant.MaxParticlesLimit:
		return fmt.Errorf("%w: max particles %d not in [0, %d]", ErrInvalidConfig, c.MaxParticles, constant.MaxParticlesLimit)
	case c.CellHeight <= 0:
		return fmt.Errorf("%w: cell height %d must be positive", ErrInvalidConfig, c.CellHeight)
	case c.CellWidth <= 0:
		return fmt.Errorf("%w: cell width %d must be positive", ErrInvalidConfig, c.CellWidth)
	}
	return nil
}

// ResultBins is the number of terminal bins and board rows, always odd
func (c Config) ResultBins() int {
	return 1 + 2*c.BouncerPairs
}

// BouncerCount is the total number of pegs over the interior rows
func (c Config) BouncerCount() int {
	return c.ResultBins() * c.BouncerPairs
}

// Board owns the bouncer layout, the particle pool and the result counters
// Single owner only: no method is safe for concurrent use
type Board struct {
	cfg          Config
	resultBins   int
	processLimit int
	speed        int

	// particles[:active] are live; fixed capacity, compacted by swap-remove
	particles []Particle
	active    int

	results  []uint64
	bouncers []vmath.Point

	rng rand.Source

	// fault is the first bin resolution failure, sticky until Destroy
	fault     error
	destroyed bool
}

// Option configures a board at construction
type Option func(*Board)

// WithSource injects the bounce direction source; tests pass a scripted source
func WithSource(src rand.Source) Option {
	return func(b *Board) {
		if src != nil {
			b.rng = src
		}
	}
}

// WithSeed makes bounce sequences reproducible
func WithSeed(seed uint64) Option {
	return func(b *Board) {
		b.rng = vmath.NewFastRand(seed)
	}
}

// NewBoard validates cfg, allocates every array once and precomputes the bouncer layout
// Without WithSource or WithSeed the direction source is seeded from the wall clock
func NewBoard(cfg Config, opts ...Option) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		cfg:          cfg,
		resultBins:   cfg.ResultBins(),
		processLimit: constant.ParticleProcessLimit,
		speed:        constant.ParticleSpeed,
		particles:    make([]Particle, cfg.MaxParticles),
		results:      make([]uint64, cfg.ResultBins()),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = vmath.NewTimeSeededRand()
	}

	b.bouncers = buildBouncerLayout(cfg)
	return b, nil
}

// Reset zeroes the result counters and empties the pool; the layout is untouched
// A bin resolution fault survives Reset
func (b *Board) Reset() error {
	if b.destroyed {
		return ErrBoardDestroyed
	}
	clear(b.results)
	b.active = 0
	return nil
}

// Destroy releases the owned arrays; later calls on the board, Destroy included, return ErrBoardDestroyed
func (b *Board) Destroy() error {
	if b.destroyed {
		return ErrBoardDestroyed
	}
	b.particles = nil
	b.results = nil
	b.bouncers = nil
	b.rng = nil
	b.active = 0
	b.destroyed = true
	return nil
}

// Err returns the sticky bin resolution fault, nil while the board is healthy
func (b *Board) Err() error {
	return b.fault
}

// Config returns the construction parameters
func (b *Board) Config() Config {
	return b.cfg
}

// ActiveCount is the number of particles in flight
func (b *Board) ActiveCount() int {
	return b.active
}

// MaxParticles is the pool capacity
func (b *Board) MaxParticles() int {
	return b.cfg.MaxParticles
}

// ResultBins is the number of terminal bins
func (b *Board) ResultBins() int {
	return b.resultBins
}

// BouncerCount is the number of precomputed pegs
func (b *Board) BouncerCount() int {
	return len(b.bouncers)
}

// ProcessLimit is the progress value of a particle starting a row transition
func (b *Board) ProcessLimit() int {
	return b.processLimit
}

// Bouncers returns a copy of the peg layout, row-major from the bottom interior row upward
func (b *Board) Bouncers() []vmath.Point {
	return slices.Clone(b.bouncers)
}

// Results returns a copy of the result counters, left to right
func (b *Board) Results() []uint64 {
	return slices.Clone(b.results)
}

// Result returns the counter of bin i
func (b *Board) Result(i int) (uint64, error) {
	if b.destroyed {
		return 0, ErrBoardDestroyed
	}
	if i < 0 || i >= len(b.results) {
		return 0, fmt.Errorf("%w: bin %d of %d", ErrIndexOutOfRange, i, len(b.results))
	}
	return b.results[i], nil
}

// MaxResult is the largest bin count, used to scale bars; 0 on an empty board
func (b *Board) MaxResult() uint64 {
	var m uint64
	for _, v := range b.results {
		m = max(m, v)
	}
	return m
}

// TotalResults is the number of particles that completed their descent since the last reset
func (b *Board) TotalResults() uint64 {
	var sum uint64
	for _, v := range b.results {
		sum += v
	}
	return sum
}
