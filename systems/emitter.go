package systems

import "github.com/lixenwraith/culture-catch/events"

// Emitter queues feedback events raised by systems
type Emitter interface {
	Emit(t events.EventType, payload any)
}

// nopEmitter drops every event
type nopEmitter struct{}

func (nopEmitter) Emit(events.EventType, any) {}

func emitterOrNop(e Emitter) Emitter {
	if e == nil {
		return nopEmitter{}
	}
	return e
}
