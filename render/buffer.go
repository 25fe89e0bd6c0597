package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited screen cell
// A zero Rune after a wide rune marks its continuation column
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is a frame compositor flushed to a tcell screen in one pass
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	base   tcell.Style
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{base: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
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

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) { return b.width, b.height }

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: b.base}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields a zero Cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetBg replaces the background of a cell keeping its rune and foreground
func (b *RenderBuffer) SetBg(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Style = c.Style.Background(bg)
}

// Fill paints a rectangle with r
func (b *RenderBuffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// SetString writes s starting at (x, y), clipped at maxWidth columns when maxWidth > 0
// Returns the number of columns used; wide runes occupy two
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style, maxWidth int) int {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if maxWidth > 0 && col+w > maxWidth {
			break
		}
		b.Set(x+col, y, r, style)
		if w == 2 {
			b.Set(x+col+1, y, 0, style)
		}
		col += w
	}
	return col
}

// StringWidth returns the display width of s
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FlushToScreen writes the buffer to the screen; continuation cells are skipped
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
