package events

import (
	"time"
)

// EventType represents the type of session event
type EventType int

const (
	// EventNone is never emitted; the state machine uses it for tick transitions
	EventNone EventType = iota

	// EventStartRequest signals the player asked to leave the welcome screen
	// Trigger: Controller.Start | Consumer: stage machine | Payload: nil
	EventStartRequest

	// EventReplayRequest signals the player asked to play again after the end
	// Trigger: Controller.Replay | Consumer: stage machine | Payload: nil
	EventReplayRequest

	// EventCountdownTick marks one step of the 3..Go countdown
	// Trigger: SecondTick during Countdown | Payload: *CountdownPayload
	EventCountdownTick

	// EventSessionStart signals the stage entered Playing
	// Trigger: Playing OnEnter | Payload: *SessionStartPayload
	EventSessionStart

	// EventDragStart signals a card was picked up
	// Trigger: DragSystem press | Payload: *CardPayload
	EventDragStart

	// EventHoverEnter signals the dragged card started overlapping the zone
	// Trigger: DragSystem move | Payload: *CardPayload
	EventHoverEnter

	// EventHoverLeave signals the dragged card stopped overlapping the zone
	// Trigger: DragSystem move | Payload: *CardPayload
	EventHoverLeave

	// EventDropCorrect signals a correct card landed in the zone
	// Trigger: DropSystem | Payload: *DropPayload
	EventDropCorrect

	// EventDropWrong signals an incorrect card landed in the zone
	// Trigger: DropSystem | Payload: *DropPayload
	EventDropWrong

	// EventDropMissed signals a card was released outside the zone
	// Trigger: DropSystem | Payload: *DropPayload
	EventDropMissed

	// EventSlotRefilled signals a vacated slot received its next card
	// Trigger: QueueSystem after vanish | Payload: *SlotPayload
	EventSlotRefilled

	// EventTimeWarning marks a clock second inside the final warning window
	// Trigger: SecondTick during Playing | Payload: *ClockPayload
	EventTimeWarning

	// EventSessionTimeout signals the session clock reached zero
	// Trigger: SessionClock | Consumer: stage machine | Payload: nil
	EventSessionTimeout

	// EventSessionCompleted signals every correct card was collected
	// Trigger: Controller after a correct drop | Consumer: stage machine | Payload: nil
	EventSessionCompleted

	// EventSessionEnd carries the result record, emitted exactly once per session
	// Trigger: Ended OnEnter | Consumer: audio, progress recorder | Payload: *SessionEndPayload
	EventSessionEnd
)

// AllEventTypes returns every emitted event type in declaration order
func AllEventTypes() []EventType {
	out := make([]EventType, 0, int(EventSessionEnd))
	for t := EventStartRequest; t <= EventSessionEnd; t++ {
		out = append(out, t)
	}
	return out
}

var eventNames = map[EventType]string{
	EventNone:             "none",
	EventStartRequest:     "start-request",
	EventReplayRequest:    "replay-request",
	EventCountdownTick:    "countdown-tick",
	EventSessionStart:     "session-start",
	EventDragStart:        "drag-start",
	EventHoverEnter:       "hover-enter",
	EventHoverLeave:       "hover-leave",
	EventDropCorrect:      "drop-correct",
	EventDropWrong:        "drop-wrong",
	EventDropMissed:       "drop-missed",
	EventSlotRefilled:     "slot-refilled",
	EventTimeWarning:      "time-warning",
	EventSessionTimeout:   "session-timeout",
	EventSessionCompleted: "session-completed",
	EventSessionEnd:       "session-end",
}

// String returns the hook name subscribers see
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEventType resolves a hook name back to its EventType
func ParseEventType(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return t, true
		}
	}
	return EventNone, false
}

// GameEvent represents a single session event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Animation tick the event was raised on
	Timestamp time.Time
}
