package parameter

// Layout
const (
	// TopMargin holds the title and the remaining counter
	TopMargin = 2

	// BarMaxHeight is the terminal rows used by the tallest result bar
	BarMaxHeight = 8

	// TitleText is drawn centered on the first row
	TitleText = "GALTON BOARD"

	// RemainingFormat is the batch counter shown under the title
	RemainingFormat = "Remaining: %d"

	// PausedSuffix follows the counter while the clock is stopped
	PausedSuffix = "  [PAUSED]"
)

// Glyphs
const (
	FunnelChar  = '▼'
	BouncerChar = '▲'
	BallChar    = 'o'
	BarChar     = '█'
)
