package systems

import (
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
)

// QueueSystem owns the active slot window and its replenishment
// Correct cards are consumed exactly once; wrong cards never leave their slot
type QueueSystem struct {
	emitter Emitter
}

func NewQueueSystem(emitter Emitter) *QueueSystem {
	return &QueueSystem{emitter: emitterOrNop(emitter)}
}

func (s *QueueSystem) Name() string { return "queue" }

func (s *QueueSystem) Priority() int { return constants.PriorityQueue }

// Fill assigns every slot from the front of the presentation order
func (s *QueueSystem) Fill(state *engine.EngineState) {
	for slot := range state.Slots {
		state.Slots[slot] = engine.EmptySlot
	}
	for slot := range state.Slots {
		id, ok := nextInOrder(state, false)
		if !ok {
			break
		}
		place(state, slot, id)
	}
}

// Update vacates slots whose vanish transition finished and refills empty slots
func (s *QueueSystem) Update(state *engine.EngineState) {
	for slot := range state.Slots {
		van, ok := state.Vanishes[slot]
		if !ok || !van.Done() {
			continue
		}
		delete(state.Vanishes, slot)
		state.Slots[slot] = engine.EmptySlot

		id, ok := s.Next(state)
		if !ok {
			s.emitter.Emit(events.EventSlotRefilled, &events.SlotPayload{Slot: slot, CardID: engine.EmptySlot})
			continue
		}
		place(state, slot, id)
		s.emitter.Emit(events.EventSlotRefilled, &events.SlotPayload{Slot: slot, CardID: id})
	}

	// Slots left empty by a short deck pick up anything that became eligible
	for slot, id := range state.Slots {
		if id != engine.EmptySlot {
			continue
		}
		if _, vanishing := state.Vanishes[slot]; vanishing {
			continue
		}
		if next, ok := s.Next(state); ok {
			place(state, slot, next)
			s.emitter.Emit(events.EventSlotRefilled, &events.SlotPayload{Slot: slot, CardID: next})
		}
	}
}

// Next picks the replacement for a vacated slot
// Prefers the first inactive uncollected correct card, then the first inactive uncollected card of any kind
func (s *QueueSystem) Next(state *engine.EngineState) (int, bool) {
	if id, ok := nextInOrder(state, true); ok {
		return id, true
	}
	return nextInOrder(state, false)
}

// Remaining counts cards that could still be placed into a slot
func (s *QueueSystem) Remaining(state *engine.EngineState) int {
	n := 0
	for _, id := range state.Order {
		if eligible(state, id) {
			n++
		}
	}
	return n
}

func nextInOrder(state *engine.EngineState, correctOnly bool) (int, bool) {
	for _, id := range state.Order {
		if !eligible(state, id) {
			continue
		}
		if correctOnly {
			if c, _ := state.Card(id); !c.Correct {
				continue
			}
		}
		return id, true
	}
	return engine.EmptySlot, false
}

func eligible(state *engine.EngineState, id int) bool {
	if _, ok := state.Card(id); !ok {
		return false
	}
	return !state.IsActive(id) && !state.CollectedCorrect.Has(id)
}

// place puts a card into a slot, creating its kinematic state unanchored so it starts at the slot anchor
func place(state *engine.EngineState, slot, id int) {
	state.Slots[slot] = id
	EnsureKinetic(state, id)
}
