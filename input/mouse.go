package input

import "github.com/gdamore/tcell/v2"

// MouseAdapter normalizes tcell mouse events into pointer events
// tcell reports button state, not transitions; the adapter derives down/up from the primary button
type MouseAdapter struct {
	pressed bool
	lastX   int
	lastY   int
}

// NewMouseAdapter creates an adapter with the button released
func NewMouseAdapter() *MouseAdapter {
	return &MouseAdapter{}
}

// Translate converts one mouse event; ok=false when the event carries no gesture change
// Motion with the button released is dropped, as is a repeated report at the same cell
func (m *MouseAdapter) Translate(ev *tcell.EventMouse) (PointerEvent, bool) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	out := PointerEvent{ID: MousePointerID, X: float64(x), Y: float64(y)}

	switch {
	case down && !m.pressed:
		out.Phase = PhaseDown
	case !down && m.pressed:
		out.Phase = PhaseUp
	case down && m.pressed:
		if x == m.lastX && y == m.lastY {
			return PointerEvent{}, false
		}
		out.Phase = PhaseMove
	default:
		return PointerEvent{}, false
	}

	m.pressed = down
	m.lastX, m.lastY = x, y
	return out, true
}

// Pressed reports whether the adapter believes the primary button is held
func (m *MouseAdapter) Pressed() bool {
	return m.pressed
}
