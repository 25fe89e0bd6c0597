package engine

import (
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/core"
)

// EmptySlot marks a slot holding no card
const EmptySlot = -1

// ZoneState is the drop zone's feedback state
type ZoneState uint8

const (
	ZoneIdle ZoneState = iota
	ZoneHover
	ZoneCorrect
	ZoneWrong
)

func (z ZoneState) String() string {
	switch z {
	case ZoneHover:
		return "hover"
	case ZoneCorrect:
		return "correct"
	case ZoneWrong:
		return "wrong"
	default:
		return "idle"
	}
}

// DragSession is the single in-flight gesture
type DragSession struct {
	CardID    int
	Slot      int
	PointerID int

	Offset core.Point // Pointer minus item top-left at press, screen cells
	Origin core.Point // Floating position at press, play-area-local; rejected drops return here
	Pos    core.Point // Current item top-left, screen cells
	Hover  bool

	// PendingRelease holds a release that arrived without geometry
	PendingRelease bool
}

// Transition is a fixed-length interpolation owned by the animation system
type Transition struct {
	CardID int
	Slot   int
	From   core.Point // Play-area-local
	Edge   core.Edge  // Edge the return originates beyond, for misses
	Tick   int
	Total  int
}

// Progress returns completion in [0,1]
func (t *Transition) Progress() float64 {
	if t.Total <= 0 {
		return 1
	}
	p := float64(t.Tick) / float64(t.Total)
	if p > 1 {
		p = 1
	}
	return p
}

// Done reports whether the transition has run its length
func (t *Transition) Done() bool { return t.Tick >= t.Total }

// ZoneFlash is the zone verdict shown for a short time after a drop
type ZoneFlash struct {
	State ZoneState
	Ticks int
}

// IDSet is an insertion-ordered set of card IDs, append-only
type IDSet struct {
	ids  []int
	seen map[int]struct{}
}

// Add inserts id once; returns false when already present
func (s *IDSet) Add(id int) bool {
	if s.seen == nil {
		s.seen = make(map[int]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Has reports membership
func (s *IDSet) Has(id int) bool {
	_, ok := s.seen[id]
	return ok
}

// Len returns the set size
func (s *IDSet) Len() int { return len(s.ids) }

// Slice returns a copy in insertion order, never nil
func (s *IDSet) Slice() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// EngineState is the whole mutable simulation for one session
// Owned by the session controller; replay discards it for a fresh one
type EngineState struct {
	Settings Settings
	Cards    []content.Card
	Order    []int // Presentation order of card IDs
	Region   string

	TotalCorrect int

	Slots    []int                  // Card ID per slot, EmptySlot when vacant
	Kinetics map[int]*core.Kinetic  // Per card ID, created lazily, kept for the session
	Drag     *DragSession           // At most one
	Returns  map[int]*Transition    // Thrown-back animations keyed by card ID
	Vanishes map[int]*Transition    // Disappearance transitions keyed by slot

	CollectedCorrect IDSet
	CollectedWrong   IDSet

	Score   ScoreState
	Clock   SessionClock
	Session SessionState
	Zone    ZoneFlash

	Geometry Geometry
	Tick     uint64
}

// NewEngineState creates a fresh state in the Welcome stage with empty slots
func NewEngineState(settings Settings, cards []content.Card, order []int) *EngineState {
	s := &EngineState{
		Settings: settings,
		Cards:    cards,
		Order:    order,
		Slots:    make([]int, settings.Slots),
		Kinetics: make(map[int]*core.Kinetic),
		Returns:  make(map[int]*Transition),
		Vanishes: make(map[int]*Transition),
		Score:    NewScoreState(settings.ScoreMin, settings.ScoreMax),
		Clock:    NewSessionClock(settings.DurationSeconds),
		Session: SessionState{
			Stage:         StageWelcome,
			Countdown:     settings.CountdownSeconds,
			TimeRemaining: settings.DurationSeconds,
		},
	}
	for i := range s.Slots {
		s.Slots[i] = EmptySlot
	}
	for _, c := range cards {
		if c.Correct {
			s.TotalCorrect++
		}
	}
	return s
}

// Card returns the card for id
func (s *EngineState) Card(id int) (content.Card, bool) {
	if id < 0 || id >= len(s.Cards) {
		return content.Card{}, false
	}
	return s.Cards[id], true
}

// SlotOf returns the slot currently holding id
func (s *EngineState) SlotOf(id int) (int, bool) {
	for i, c := range s.Slots {
		if c == id && c != EmptySlot {
			return i, true
		}
	}
	return 0, false
}

// IsActive reports whether id occupies a slot
func (s *EngineState) IsActive(id int) bool {
	_, ok := s.SlotOf(id)
	return ok
}

// Floating reports whether the card in a slot is free-moving: not dragged, returning or vanishing
func (s *EngineState) Floating(slot int) bool {
	if slot < 0 || slot >= len(s.Slots) {
		return false
	}
	id := s.Slots[slot]
	if id == EmptySlot {
		return false
	}
	if s.Drag != nil && s.Drag.CardID == id {
		return false
	}
	if _, ok := s.Returns[id]; ok {
		return false
	}
	if _, ok := s.Vanishes[slot]; ok {
		return false
	}
	return true
}

// ActiveCount returns the number of occupied slots
func (s *EngineState) ActiveCount() int {
	n := 0
	for _, id := range s.Slots {
		if id != EmptySlot {
			n++
		}
	}
	return n
}

// AllCorrectCollected reports the completion criterion; never true for a deck without correct cards
func (s *EngineState) AllCorrectCollected() bool {
	return s.TotalCorrect > 0 && s.CollectedCorrect.Len() == s.TotalCorrect
}

// ItemRect returns a card's current box in screen cells
// Dragged cards use the drag position, others their kinetic position offset by the play area
func (s *EngineState) ItemRect(id int, w, h float64) (core.Area, bool) {
	if s.Drag != nil && s.Drag.CardID == id {
		return core.Area{X: s.Drag.Pos.X, Y: s.Drag.Pos.Y, Width: w, Height: h}, true
	}
	k, ok := s.Kinetics[id]
	if !ok || !k.Anchored || !s.Geometry.HasPlay {
		return core.Area{}, false
	}
	return core.Area{X: s.Geometry.Play.X + k.X, Y: s.Geometry.Play.Y + k.Y, Width: w, Height: h}, true
}
