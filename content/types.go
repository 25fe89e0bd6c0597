package content

import (
	"errors"
	"fmt"
	"strings"
)

// Card is one floating candidate, immutable once loaded
// ID is the positional index into the full deck and is assigned on load
type Card struct {
	ID      int    `json:"-"`
	Emoji   string `json:"emoji"`
	Label   string `json:"label"`
	Correct bool   `json:"isCorrect"`
	Meta    string `json:"origin"`
	Info    string `json:"info,omitempty"`
}

// Deck is the card set for one level, as served by the content service
type Deck struct {
	Email      string `json:"email,omitempty"`
	Region     string `json:"region,omitempty"`
	Theme      string `json:"theme,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Cards      []Card `json:"cards"`

	// Fallback marks the embedded deck substituted after a load failure
	Fallback bool `json:"-"`
}

// CorrectCount returns the number of cards tagged correct
func (d Deck) CorrectCount() int {
	n := 0
	for _, c := range d.Cards {
		if c.Correct {
			n++
		}
	}
	return n
}

// Deck loading errors
var (
	ErrNoCards       = errors.New("deck has no cards")
	ErrMalformedDeck = errors.New("malformed deck")
)

// Validate checks the deck can drive a session
// A deck must carry at least one correct card, and every card needs a label
func (d Deck) Validate() error {
	if len(d.Cards) == 0 {
		return ErrNoCards
	}
	for i, c := range d.Cards {
		if strings.TrimSpace(c.Label) == "" {
			return fmt.Errorf("%w: card %d has no label", ErrMalformedDeck, i)
		}
	}
	if d.CorrectCount() == 0 {
		return fmt.Errorf("%w: no correct cards", ErrMalformedDeck)
	}
	return nil
}

// normalize assigns positional IDs
func (d *Deck) normalize() {
	for i := range d.Cards {
		d.Cards[i].ID = i
	}
}
