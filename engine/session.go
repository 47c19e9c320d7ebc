package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/galton/galton"
	"github.com/lixenwraith/galton/parameter"
)

// ErrInvalidSessionConfig rejects batch timing that cannot drive a session
var ErrInvalidSessionConfig = errors.New("invalid session config")

// Phase is the batch cycle position
type Phase int

const (
	// PhaseSpawning drops one ball per spawn interval until the batch is exhausted
	PhaseSpawning Phase = iota
	// PhaseDraining waits for the balls in flight to land
	PhaseDraining
	// PhaseCooldown shows the final distribution before the board is reset
	PhaseCooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseDraining:
		return "draining"
	case PhaseCooldown:
		return "cooldown"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var validTransitions = map[Phase]Phase{
	PhaseSpawning: PhaseDraining,
	PhaseDraining: PhaseCooldown,
	PhaseCooldown: PhaseSpawning,
}

// SessionConfig is the batch cycle timing
type SessionConfig struct {
	BatchSize     int
	SpawnInterval time.Duration
	InitialDelay  time.Duration
	Cooldown      time.Duration
}

// DefaultSessionConfig returns the stock batch cycle
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		BatchSize:     parameter.ParticleBatchSize,
		SpawnInterval: parameter.ParticleSpawnInterval,
		InitialDelay:  parameter.InitialSpawnDelay,
		Cooldown:      parameter.BatchCooldown,
	}
}

// Validate rejects a non-positive batch and negative durations
func (c SessionConfig) Validate() error {
	switch {
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: batch size %d must be positive", ErrInvalidSessionConfig, c.BatchSize)
	case c.SpawnInterval < 0 || c.InitialDelay < 0 || c.Cooldown < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidSessionConfig)
	}
	return nil
}

// TickReport describes what one Tick did, for sound cues and the HUD
type TickReport struct {
	Phase     Phase // phase after the tick
	Spawned   bool  // a ball was dropped
	Deferred  bool  // the spawn was due but the pool was full
	Landed    int   // balls counted into bins during the step
	BatchDone bool  // the last ball of the batch landed
	Reset     bool  // cooldown expired and the board was cleared
}

// Session drives one board through repeated batches, one Step per Tick
// Owned by a single goroutine, like the board it wraps
type Session struct {
	board   *galton.Board
	cfg     SessionConfig
	clock   TimeProvider
	logger  zerolog.Logger
	metrics *sessionMetrics

	phase          Phase
	phaseStart     time.Time
	timer          time.Duration
	batchRemaining int
	batches        int
	ticks          uint64
	lastTick       time.Time
}

// SessionOption configures optional session collaborators
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	logger zerolog.Logger
	meter  metric.Meter
}

// WithLogger sets the session logger, default is zerolog.Nop
func WithLogger(l zerolog.Logger) SessionOption {
	return func(o *sessionOptions) { o.logger = l }
}

// WithMeter records metrics on m instead of the global meter
func WithMeter(m metric.Meter) SessionOption {
	return func(o *sessionOptions) { o.meter = m }
}

// NewSession starts a batch on board; the first spawn happens after cfg.InitialDelay
func NewSession(board *galton.Board, cfg SessionConfig, clock TimeProvider, opts ...SessionOption) (*Session, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: nil board", ErrInvalidSessionConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.meter == nil {
		o.meter = globalMeter()
	}

	metrics, err := newSessionMetrics(o.meter)
	if err != nil {
		return nil, err
	}

	now := clock.Now()
	s := &Session{
		board:          board,
		cfg:            cfg,
		clock:          clock,
		logger:         o.logger.With().Str("component", "session").Logger(),
		metrics:        metrics,
		phase:          PhaseSpawning,
		phaseStart:     now,
		timer:          cfg.InitialDelay,
		batchRemaining: cfg.BatchSize,
		lastTick:       now,
	}

	s.logger.Info().
		Int("bins", board.ResultBins()).
		Int("max_particles", board.MaxParticles()).
		Int("batch_size", cfg.BatchSize).
		Msg("session started")

	return s, nil
}

// Tick advances the batch cycle by the clock time elapsed since the previous tick, then steps the board once
// Spawn and step failures other than a full pool are returned and the session must be abandoned
func (s *Session) Tick() (TickReport, error) {
	now := s.clock.Now()
	s.timer -= now.Sub(s.lastTick)
	s.lastTick = now
	s.ticks++

	var report TickReport

	switch s.phase {
	case PhaseSpawning:
		if s.timer > 0 {
			break
		}
		err := s.board.Spawn()
		switch {
		case errors.Is(err, galton.ErrPoolFull):
			// Retry on the next tick
			s.timer = 0
			report.Deferred = true
			s.logger.Debug().Int("active", s.board.ActiveCount()).Msg("spawn deferred, pool full")
		case err != nil:
			s.logger.Error().Err(err).Msg("spawn failed")
			return report, fmt.Errorf("spawn: %w", err)
		default:
			report.Spawned = true
			s.batchRemaining--
			s.timer = s.cfg.SpawnInterval
			if s.batchRemaining == 0 {
				s.transition(PhaseDraining, now)
			}
		}

	case PhaseDraining:
		if s.board.ActiveCount() == 0 {
			s.batches++
			report.BatchDone = true
			s.timer = s.cfg.Cooldown
			s.logger.Info().
				Int("batch", s.batches).
				Uint64("landed", s.board.TotalResults()).
				Uints64("results", s.board.Results()).
				Msg("batch complete")
			s.transition(PhaseCooldown, now)
		}

	case PhaseCooldown:
		if s.timer > 0 {
			break
		}
		if err := s.board.Reset(); err != nil {
			s.logger.Error().Err(err).Msg("reset failed")
			return report, fmt.Errorf("reset: %w", err)
		}
		report.Reset = true
		s.timer = s.cfg.SpawnInterval
		s.batchRemaining = s.cfg.BatchSize
		s.transition(PhaseSpawning, now)
	}

	before := s.board.TotalResults()
	stepStart := time.Now()
	if err := s.board.Step(); err != nil {
		s.logger.Error().Err(err).Uint64("tick", s.ticks).Msg("step failed")
		return report, fmt.Errorf("step: %w", err)
	}
	stepTime := time.Since(stepStart)

	report.Landed = int(s.board.TotalResults() - before)
	report.Phase = s.phase
	s.metrics.recordTick(report, s.board.ActiveCount(), stepTime)

	return report, nil
}

func (s *Session) transition(to Phase, now time.Time) {
	if validTransitions[s.phase] != to {
		panic(fmt.Sprintf("invalid phase transition %s -> %s", s.phase, to))
	}
	s.logger.Debug().
		Stringer("from", s.phase).
		Stringer("to", to).
		Dur("elapsed", now.Sub(s.phaseStart)).
		Msg("phase transition")
	s.phase = to
	s.phaseStart = now
}

// Board returns the simulated board for read-only queries
func (s *Session) Board() *galton.Board {
	return s.board
}

// Phase returns the current batch cycle phase
func (s *Session) Phase() Phase {
	return s.phase
}

// BatchRemaining is the number of balls still to be dropped in this batch
func (s *Session) BatchRemaining() int {
	return s.batchRemaining
}

// Batches is the number of completed batches
func (s *Session) Batches() int {
	return s.batches
}

// Ticks is the number of Tick calls
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// ShowCounts reports whether per-bin counts should be displayed, once spawning has finished
func (s *Session) ShowCounts() bool {
	return s.phase != PhaseSpawning
}
