package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/render"
)

// drawBox outlines a w x h rectangle with single-line box runes
func drawBox(buf *render.RenderBuffer, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		buf.Set(col, y, '─', style)
		buf.Set(col, bottom, '─', style)
	}
	for row := y + 1; row < bottom; row++ {
		buf.Set(x, row, '│', style)
		buf.Set(right, row, '│', style)
	}
	buf.Set(x, y, '┌', style)
	buf.Set(right, y, '┐', style)
	buf.Set(x, bottom, '└', style)
	buf.Set(right, bottom, '┘', style)
}

// centerText writes s centered on row y within [x, x+w)
func centerText(buf *render.RenderBuffer, x, y, w int, s string, style tcell.Style) {
	sw := render.StringWidth(s)
	if sw > w {
		sw = w
	}
	buf.SetString(x+(w-sw)/2, y, s, style, w)
}
