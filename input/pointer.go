package input

// Phase is the pointer gesture phase
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is the normalized input consumed by the drag controller
// X/Y are screen cells; ID identifies the pointer across a gesture
type PointerEvent struct {
	ID    int
	X, Y  float64
	Phase Phase
}

// MousePointerID is the pointer identifier used for the terminal mouse
const MousePointerID = 0
