package vmath

import "time"

// FastRand is a xorshift64 generator (13, 17, 5)
// Satisfies math/rand/v2.Source; not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand returns a generator for seed, zero is remapped to 1 since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeededRand seeds from the wall clock, suitable for visuals only
func NewTimeSeededRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint64 implements math/rand/v2.Source
func (r *FastRand) Uint64() uint64 {
	return r.Next()
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// State returns the current internal state, feeding it back to NewFastRand resumes the sequence
func (r *FastRand) State() uint64 {
	return r.state
}
