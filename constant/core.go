package constant

// Board Limits
const (
	// MaxBouncerPairs caps board height; 11 pairs gives 23 result bins
	MaxBouncerPairs = 11

	// MaxParticlesLimit is the largest particle pool a board accepts
	MaxParticlesLimit = 255
)

// Particle Motion
const (
	// ParticleSpeed is the progress decrement applied to every active particle per tick
	ParticleSpeed = 12

	// ParticleProcessLimit is the progress value of a particle at the start of a row transition
	// A row takes ceil(ParticleProcessLimit/ParticleSpeed) = 22 ticks
	ParticleProcessLimit = 0xff
)

// Bounce directions
const (
	DirectionLeft  = -1
	DirectionNone  = 0
	DirectionRight = 1
)
