package events

import (
	"testing"

	"github.com/lixenwraith/culture-catch/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventDragStart, Tick: 1})
	q.Push(GameEvent{Type: EventHoverEnter, Tick: 2})
	q.Push(GameEvent{Type: EventDropCorrect, Tick: 3})

	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}

	got := q.Consume()
	want := []EventType{EventDragStart, EventHoverEnter, EventDropCorrect}
	if len(got) != len(want) {
		t.Fatalf("Consume returned %d events, want %d", len(got), len(want))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, ev.Type, want[i])
		}
	}

	if q.Consume() != nil {
		t.Error("second Consume should return nil")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventCountdownTick, Tick: uint64(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Consume returned %d events, want %d", len(got), constants.EventQueueSize)
	}
	if got[0].Tick != 10 {
		t.Errorf("oldest surviving tick = %d, want 10", got[0].Tick)
	}
	if got[len(got)-1].Tick != uint64(total-1) {
		t.Errorf("newest tick = %d, want %d", got[len(got)-1].Tick, total-1)
	}
}

func TestEventTypeNames(t *testing.T) {
	tests := []struct {
		t    EventType
		name string
	}{
		{EventHoverEnter, "hover-enter"},
		{EventDropCorrect, "drop-correct"},
		{EventDropWrong, "drop-wrong"},
		{EventSessionEnd, "session-end"},
		{EventType(999), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.name {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.name)
		}
	}

	if et, ok := ParseEventType("drop-wrong"); !ok || et != EventDropWrong {
		t.Errorf("ParseEventType(drop-wrong) = %v,%v", et, ok)
	}
	if _, ok := ParseEventType("nope"); ok {
		t.Error("ParseEventType should reject unknown names")
	}
}

func TestAllEventTypesNamed(t *testing.T) {
	all := AllEventTypes()
	if all[0] != EventStartRequest || all[len(all)-1] != EventSessionEnd {
		t.Errorf("range = %v..%v", all[0], all[len(all)-1])
	}
	for _, et := range all {
		if et.String() == "unknown" {
			t.Errorf("EventType(%d) has no name", et)
		}
	}
}
