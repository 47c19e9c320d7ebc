package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell of the frame
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an off-screen frame, composed once per tick and flushed to the screen in one pass
type Buffer struct {
	width  int
	height int
	cells  []Cell
	style  tcell.Style // clear style
}

// NewBuffer creates a buffer with the specified dimensions, cleared to blanks in style
func NewBuffer(width, height int, style tcell.Style) *Buffer {
	b := &Buffer{style: style}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
// Content is cleared, the next frame redraws everything
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blanks using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: b.style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetContent writes one cell, out of bounds writes are clipped and reported as false
func (b *Buffer) SetContent(x, y int, r rune, style tcell.Style) bool {
	if !b.inBounds(x, y) {
		return false
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
	return true
}

// DrawText writes text left to right from (x, y) and returns the number of columns it spans
// Wide runes occupy two columns, the second is left blank
func (b *Buffer) DrawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, r := range text {
		b.SetContent(col, y, r, style)
		w := runewidth.RuneWidth(r)
		if w == 2 {
			b.SetContent(col+1, y, ' ', style)
		}
		if w < 1 {
			w = 1
		}
		col += w
	}
	return col - x
}

// DrawTextCentered writes text so that it is centered on column cx
func (b *Buffer) DrawTextCentered(cx, y int, text string, style tcell.Style) int {
	return b.DrawText(cx-runewidth.StringWidth(text)/2, y, text, style)
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// GetLine returns the runes of a row as a string, for tests and diagnostics
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	line := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		line[x] = b.cells[y*b.width+x].Rune
	}
	return string(line)
}

// Flush copies the frame to screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
