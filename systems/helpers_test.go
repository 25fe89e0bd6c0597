package systems

import (
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
)

type recordedEvent struct {
	Type    events.EventType
	Payload any
}

type recorder struct {
	events []recordedEvent
}

func (r *recorder) Emit(t events.EventType, payload any) {
	r.events = append(r.events, recordedEvent{t, payload})
}

func (r *recorder) types() []events.EventType {
	out := make([]events.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *recorder) count(t events.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// deck builds cards from a correctness pattern, labels are positional
func deck(correct ...bool) []content.Card {
	cards := make([]content.Card, len(correct))
	for i, c := range correct {
		cards[i] = content.Card{ID: i, Label: string(rune('A' + i)), Correct: c}
	}
	return cards
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// newPlayingState returns a state with geometry sampled from a 96x36 static layout:
// play area (0,0,96,30), zone (32,30,32,6)
func newPlayingState(cards []content.Card, slots int) *engine.EngineState {
	settings := engine.DefaultSettings()
	settings.Slots = slots
	s := engine.NewEngineState(settings, cards, identity(len(cards)))
	s.Session.Stage = engine.StagePlaying
	s.Geometry = engine.SampleGeometry(engine.NewStaticGeometry(96, 36, 6))
	return s
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
