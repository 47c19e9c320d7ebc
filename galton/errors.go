package galton

import (
	"errors"

	"github.com/lixenwraith/galton/physics"
)

// Sentinel errors, compare with errors.Is; returned values are wrapped with context
var (
	// ErrInvalidConfig rejects construction parameters, no board is created
	ErrInvalidConfig = errors.New("invalid board config")

	// ErrPoolFull is routine flow control: the caller retries the spawn on a later tick
	ErrPoolFull = errors.New("particle pool full")

	// ErrIndexOutOfRange reports a query index beyond the current bounds
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidProgress reports an in-flight fraction outside [0, 1]
	ErrInvalidProgress = physics.ErrInvalidProgress

	// ErrBoardDestroyed is returned by every operation after Destroy
	ErrBoardDestroyed = errors.New("board destroyed")
)

// Terminal bin resolution failures; each one means a particle record is corrupt and the board is unusable
var (
	ErrOddParity   = errors.New("terminal slot has odd parity")
	ErrNegativeBin = errors.New("terminal bin index is negative")
	ErrBinOverflow = errors.New("terminal bin index overflows result bins")
)
