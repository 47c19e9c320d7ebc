package parameter

import "time"

// Loop Timing
const (
	// TickRate is simulation steps per second, one step per rendered frame
	TickRate = 4 * 3 * 2 * (4 + 1)

	// TickInterval is the duration of one simulation step at TickRate
	TickInterval = time.Second / TickRate
)

// Batch Cycle
const (
	// ParticleSpawnInterval is the delay between two spawns while a batch is running
	ParticleSpawnInterval = 300 * time.Millisecond

	// InitialSpawnDelay is the wait before the first spawn of a session
	InitialSpawnDelay = time.Second

	// ParticleBatchSize2Power sets the batch size as a power of two
	ParticleBatchSize2Power = 8

	// ParticleBatchSize is the number of balls dropped per batch
	ParticleBatchSize = 1 << ParticleBatchSize2Power

	// BatchCooldown is the pause between the last ball landing and the board reset
	BatchCooldown = ParticleSpawnInterval*4 + 4*time.Second
)

// Board Defaults
const (
	// DefaultBouncerPairs gives 11 result bins
	DefaultBouncerPairs = 4 + 1

	// DefaultMaxParticles is the full pool
	DefaultMaxParticles = 255

	// DefaultCellHeight is terminal rows per board row
	DefaultCellHeight = 2

	// DefaultCellWidth is terminal columns per two slots; terminal cells are about twice as tall as wide
	DefaultCellWidth = 4
)
