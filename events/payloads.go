package events

import "github.com/lixenwraith/culture-catch/engine"

// CardPayload identifies the card a drag event refers to
type CardPayload struct {
	CardID int
	Slot   int
}

// DropPayload describes a resolved release
type DropPayload struct {
	CardID int
	Slot   int
	Delta  int // Score delta applied, 0 for a miss
	Score  int // Score after the delta
}

// SlotPayload describes a slot change; CardID is -1 when the slot stays empty
type SlotPayload struct {
	Slot   int
	CardID int
}

// CountdownPayload carries the remaining countdown steps, 0 means "Go"
type CountdownPayload struct {
	Remaining int
}

// ClockPayload carries the remaining session seconds
type ClockPayload struct {
	Remaining int
}

// SessionStartPayload describes the session entering play
type SessionStartPayload struct {
	Duration     int
	TotalCorrect int
}

// SessionEndPayload carries the result record handed to persistence collaborators
type SessionEndPayload struct {
	Result engine.Result
}
