package input

// TouchType is the phase of a touch-style event
type TouchType uint8

const (
	TouchStart TouchType = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// Touch is one contact point of a touch event
type Touch struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// TouchEvent is a touch-style event carrying the changed contacts
type TouchEvent struct {
	Type    TouchType `json:"type"`
	Touches []Touch   `json:"touches"`
}

// TouchAdapter normalizes touch events onto the pointer stream
// Only the primary contact is tracked; cancel is treated as release
type TouchAdapter struct {
	primary int
	active  bool
}

// NewTouchAdapter creates an adapter with no tracked contact
func NewTouchAdapter() *TouchAdapter {
	return &TouchAdapter{}
}

// Translate converts one touch event; ok=false for events not concerning the primary contact
func (t *TouchAdapter) Translate(ev TouchEvent) (PointerEvent, bool) {
	switch ev.Type {
	case TouchStart:
		if t.active || len(ev.Touches) == 0 {
			return PointerEvent{}, false
		}
		c := ev.Touches[0]
		t.primary, t.active = c.ID, true
		return PointerEvent{ID: c.ID, X: c.X, Y: c.Y, Phase: PhaseDown}, true

	case TouchMove:
		if c, ok := t.find(ev.Touches); ok {
			return PointerEvent{ID: c.ID, X: c.X, Y: c.Y, Phase: PhaseMove}, true
		}

	case TouchEnd, TouchCancel:
		if c, ok := t.find(ev.Touches); ok {
			t.active = false
			return PointerEvent{ID: c.ID, X: c.X, Y: c.Y, Phase: PhaseUp}, true
		}
	}
	return PointerEvent{}, false
}

func (t *TouchAdapter) find(touches []Touch) (Touch, bool) {
	if !t.active {
		return Touch{}, false
	}
	for _, c := range touches {
		if c.ID == t.primary {
			return c, true
		}
	}
	return Touch{}, false
}
