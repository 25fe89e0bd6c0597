package systems

import (
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/core"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
	"github.com/lixenwraith/culture-catch/input"
	"github.com/lixenwraith/culture-catch/vmath"
)

// DragSystem runs the per-gesture state machine over the normalized pointer stream
// Idle -> Dragging on a press over a floating card, Dragging -> released on up
type DragSystem struct {
	emitter Emitter
	drop    *DropSystem
}

func NewDragSystem(emitter Emitter, drop *DropSystem) *DragSystem {
	return &DragSystem{emitter: emitterOrNop(emitter), drop: drop}
}

func (s *DragSystem) Name() string { return "drag" }

func (s *DragSystem) Priority() int { return constants.PriorityDrag }

// Update resolves a release that arrived while geometry was unavailable
func (s *DragSystem) Update(state *engine.EngineState) {
	if state.Drag != nil && state.Drag.PendingRelease {
		s.drop.Resolve(state)
	}
}

// HandlePointer applies one pointer event; the returned drop is valid when resolved is true
// Callers gate on the Playing stage
func (s *DragSystem) HandlePointer(state *engine.EngineState, ev input.PointerEvent) (drop Drop, resolved bool) {
	switch ev.Phase {
	case input.PhaseDown:
		s.press(state, ev)
	case input.PhaseMove:
		s.move(state, ev)
	case input.PhaseUp:
		return s.release(state, ev)
	}
	return Drop{}, false
}

func (s *DragSystem) press(state *engine.EngineState, ev input.PointerEvent) {
	// First drag wins
	if state.Drag != nil || !state.Geometry.HasPlay {
		return
	}

	// Later slots draw on top, so they win overlapping presses
	for slot := len(state.Slots) - 1; slot >= 0; slot-- {
		if !state.Floating(slot) {
			continue
		}
		id := state.Slots[slot]
		rect, ok := state.ItemRect(id, constants.CardWidth, constants.CardHeight)
		if !ok || !vmath.AreaContains(rect, ev.X, ev.Y) {
			continue
		}

		topLeft := core.Point{X: rect.X, Y: rect.Y}
		state.Drag = &engine.DragSession{
			CardID:    id,
			Slot:      slot,
			PointerID: ev.ID,
			Offset:    core.Point{X: ev.X, Y: ev.Y}.Sub(topLeft),
			Origin:    state.Kinetics[id].Position(),
			Pos:       topLeft,
		}
		s.emitter.Emit(events.EventDragStart, &events.CardPayload{CardID: id, Slot: slot})
		return
	}
}

func (s *DragSystem) move(state *engine.EngineState, ev input.PointerEvent) {
	d := state.Drag
	if d == nil || d.PointerID != ev.ID || d.PendingRelease {
		return
	}
	d.Pos = core.Point{X: ev.X, Y: ev.Y}.Sub(d.Offset)

	if !state.Geometry.HasZone {
		return
	}
	item := core.Area{X: d.Pos.X, Y: d.Pos.Y, Width: constants.CardWidth, Height: constants.CardHeight}
	hover := Classify(item, state.Geometry.Zone) == OutcomeInside
	if hover == d.Hover {
		return
	}
	d.Hover = hover

	if state.Zone.Ticks == 0 {
		if hover {
			state.Zone.State = engine.ZoneHover
		} else {
			state.Zone.State = engine.ZoneIdle
		}
	}

	payload := &events.CardPayload{CardID: d.CardID, Slot: d.Slot}
	if hover {
		s.emitter.Emit(events.EventHoverEnter, payload)
	} else {
		s.emitter.Emit(events.EventHoverLeave, payload)
	}
}

func (s *DragSystem) release(state *engine.EngineState, ev input.PointerEvent) (Drop, bool) {
	d := state.Drag
	if d == nil || d.PointerID != ev.ID || d.PendingRelease {
		return Drop{}, false
	}
	d.Pos = core.Point{X: ev.X, Y: ev.Y}.Sub(d.Offset)

	if !state.Geometry.Ready() {
		d.PendingRelease = true
		return Drop{}, false
	}
	return s.drop.Resolve(state)
}
