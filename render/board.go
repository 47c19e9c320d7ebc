package render

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/galton/galton"
	"github.com/lixenwraith/galton/parameter"
	"github.com/lixenwraith/galton/vmath"
)

// Frame is the per-tick input of BoardRenderer
type Frame struct {
	Board      *galton.Board
	Remaining  int  // balls still to drop in the current batch
	ShowCounts bool // per-bin counts under the bars
	Paused     bool
}

// BoardRenderer draws the board, balls, result bars and HUD into a Buffer
type BoardRenderer struct {
	buf   *Buffer
	cycle *ColorCycle
}

// NewBoardRenderer creates a renderer drawing into buf
func NewBoardRenderer(buf *Buffer) *BoardRenderer {
	return &BoardRenderer{
		buf:   buf,
		cycle: NewColorCycle(),
	}
}

// Origin is the spawn point in buffer cells: horizontally centered, under the funnel
func (r *BoardRenderer) Origin() vmath.Point {
	return vmath.Point{X: r.buf.Width() / 2, Y: parameter.TopMargin + 1}
}

// MinSize returns the buffer size needed to draw board without clipping
func MinSize(board *galton.Board) (width, height int) {
	cfg := board.Config()
	bins := board.ResultBins()
	width = max(bins*cfg.CellWidth+1, len(parameter.TitleText))
	height = parameter.TopMargin + 1 + bins*cfg.CellHeight + parameter.BarMaxHeight + 2
	return width, height
}

// Render composes one frame and advances the title color
// A plot failure aborts the frame and is returned, the board is unusable after it
func (r *BoardRenderer) Render(f Frame) error {
	r.buf.Clear()

	origin := r.Origin()
	originF := origin.Float()

	r.buf.DrawTextCentered(origin.X, 0, parameter.TitleText, StyleText.Foreground(r.cycle.Color()).Bold(true))
	status := fmt.Sprintf(parameter.RemainingFormat, f.Remaining)
	if f.Paused {
		status += parameter.PausedSuffix
	}
	r.buf.DrawTextCentered(origin.X, 1, status, StyleText)
	r.buf.SetContent(origin.X, origin.Y-1, parameter.FunnelChar, StyleFunnel)

	// Pegs sit one row under their center so a ball passing the center stays visible
	for _, b := range f.Board.Bouncers() {
		p := origin.Add(b)
		r.buf.SetContent(p.X, p.Y+1, parameter.BouncerChar, StyleBouncer)
	}

	if err := r.drawResults(f, originF); err != nil {
		return err
	}

	for i := 0; i < f.Board.ActiveCount(); i++ {
		p, err := f.Board.PlotParticle(i, originF)
		if err != nil {
			return fmt.Errorf("plot particle %d: %w", i, err)
		}
		q := p.Round()
		r.buf.SetContent(q.X, q.Y, parameter.BallChar, StyleBall)
	}

	r.cycle.Next()
	return nil
}

// drawResults draws one bar per bin under its anchor, scaled to the fullest bin
func (r *BoardRenderer) drawResults(f Frame, originF vmath.PointF) error {
	peak := f.Board.MaxResult()
	for i := 0; i < f.Board.ResultBins(); i++ {
		p, err := f.Board.PlotResultBin(i, originF)
		if err != nil {
			return fmt.Errorf("plot bin %d: %w", i, err)
		}
		anchor := p.Round()

		count, err := f.Board.Result(i)
		if err != nil {
			return err
		}

		h := barHeight(count, peak)
		for y := 1; y <= h; y++ {
			r.buf.SetContent(anchor.X, anchor.Y+y, parameter.BarChar, StyleBar)
		}

		if f.ShowCounts {
			r.buf.DrawTextCentered(anchor.X, anchor.Y+parameter.BarMaxHeight+1, strconv.FormatUint(count, 10), StyleCount)
		}
	}
	return nil
}

// barHeight scales count to BarMaxHeight rows, any non-empty bin gets at least one row
func barHeight(count, peak uint64) int {
	if count == 0 || peak == 0 {
		return 0
	}
	return int((count*parameter.BarMaxHeight + peak - 1) / peak)
}
