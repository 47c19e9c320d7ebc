package render

import "github.com/gdamore/tcell/v2"

// Palette, dark glyphs on a white board
var (
	ColorBackground = tcell.NewRGBColor(255, 255, 255)
	ColorText       = tcell.NewRGBColor(0, 0, 0)
	ColorFunnel     = tcell.NewRGBColor(96, 96, 96)
	ColorBouncer    = tcell.NewRGBColor(0, 0, 0)
	ColorBall       = tcell.NewRGBColor(230, 41, 55)
	ColorBar        = tcell.NewRGBColor(0, 228, 48)
	ColorCount      = tcell.NewRGBColor(127, 0, 64)
)

// Styles derived from the palette
var (
	StyleBackground = tcell.StyleDefault.Background(ColorBackground).Foreground(ColorText)
	StyleText       = StyleBackground
	StyleFunnel     = StyleBackground.Foreground(ColorFunnel)
	StyleBouncer    = StyleBackground.Foreground(ColorBouncer)
	StyleBall       = StyleBackground.Foreground(ColorBall).Bold(true)
	StyleBar        = StyleBackground.Foreground(ColorBar)
	StyleCount      = StyleBackground.Foreground(ColorCount)
)
