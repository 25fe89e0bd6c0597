package render

import (
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/core"
)

// Layout derives the play field and drop zone from the terminal size
// Implements engine.GeometryProvider; owned by the engine loop goroutine
type Layout struct {
	width, height int
}

// NewLayout creates a layout for a screen of width x height cells
func NewLayout(width, height int) *Layout {
	return &Layout{width: width, height: height}
}

// Resize records the new terminal size
func (l *Layout) Resize(width, height int) {
	l.width, l.height = width, height
}

// Size returns the terminal size the layout was computed for
func (l *Layout) Size() (int, int) { return l.width, l.height }

func (l *Layout) zoneHeight() int {
	zh := l.height / constants.ZoneHeightDivisor
	if zh < constants.MinZoneHeight {
		zh = constants.MinZoneHeight
	}
	return zh
}

// PlayArea is the band between the header and the drop zone
// Unavailable when the terminal cannot fit a card with room to float
func (l *Layout) PlayArea() (core.Area, bool) {
	h := l.height - constants.HeaderRows - l.zoneHeight()
	if l.width < constants.MinPlayWidth || h < constants.MinPlayHeight {
		return core.Area{}, false
	}
	return core.Area{
		X:      0,
		Y:      constants.HeaderRows,
		Width:  float64(l.width),
		Height: float64(h),
	}, true
}

// DropZone is the middle third of the bottom band
func (l *Layout) DropZone() (core.Area, bool) {
	if _, ok := l.PlayArea(); !ok {
		return core.Area{}, false
	}
	zh := l.zoneHeight()
	w := l.width / 3
	return core.Area{
		X:      float64(w),
		Y:      float64(l.height - zh),
		Width:  float64(w),
		Height: float64(zh),
	}, true
}
