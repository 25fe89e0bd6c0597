package session

import (
	"testing"
	"time"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
	"github.com/lixenwraith/culture-catch/input"
)

// Layout used by every controller test: play (0,0,96,30), zone (32,30,32,6)
func testGeometry() *engine.StaticGeometry {
	return engine.NewStaticGeometry(96, 36, 6)
}

// buildDeck creates cards from a pattern of 'c' (correct) and 'w' (wrong)
func buildDeck(pattern string) content.Deck {
	d := content.Deck{Region: "Berlin"}
	for i, r := range pattern {
		d.Cards = append(d.Cards, content.Card{ID: i, Label: string(rune('A' + i)), Correct: r == 'c'})
	}
	return d
}

// scenarioDeck is six correct and four incorrect cards, interleaved so wrong cards are active early
func scenarioDeck() content.Deck {
	return buildDeck("cwcwcwcwcc")
}

func scenarioSettings() engine.Settings {
	s := engine.DefaultSettings()
	s.Shuffle = false
	s.ScoreMin = -3
	s.ScoreMax = 10
	return s
}

type eventLog struct {
	events []events.GameEvent
}

func (l *eventLog) HandleEvent(ev events.GameEvent) { l.events = append(l.events, ev) }

func (l *eventLog) EventTypes() []events.EventType { return events.AllEventTypes() }

func (l *eventLog) count(t events.EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type harness struct {
	t   *testing.T
	c   *Controller
	log *eventLog
}

func newHarness(t *testing.T, deck content.Deck, settings engine.Settings) *harness {
	t.Helper()
	c, err := New(Options{
		Settings: settings,
		Deck:     deck,
		Geometry: testGeometry(),
		Time:     engine.NewMockTimeProvider(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)),
		Email:    "player@example.com",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := &harness{t: t, c: c, log: &eventLog{}}
	c.Subscribe(h.log)
	return h
}

// play drives Welcome -> Countdown -> Playing
func (h *harness) play() {
	h.t.Helper()
	if !h.c.Start() {
		h.t.Fatal("Start refused")
	}
	for i := 0; i < h.c.settings.CountdownSeconds; i++ {
		h.c.SecondTick()
	}
	if h.c.State().Stage != engine.StagePlaying {
		h.t.Fatalf("stage = %v after countdown, want playing", h.c.State().Stage)
	}
	h.c.Tick()
}

// freeze parks active floating cards on a fixed row so presses are unambiguous
func (h *harness) freeze() {
	s := h.c.state
	for slot, id := range s.Slots {
		if id == engine.EmptySlot {
			continue
		}
		k, ok := s.Kinetics[id]
		if !ok {
			continue
		}
		k.X, k.Y = float64(slot*18), 2
		k.VX, k.VY = 0, 0
		k.Anchored = true
	}
}

// settle ticks until no return or vanish transition is running
func (h *harness) settle() {
	for i := 0; i < constants.ReturnTicks+constants.VanishTicks+2; i++ {
		if len(h.c.state.Returns) == 0 && len(h.c.state.Vanishes) == 0 {
			return
		}
		h.c.Tick()
	}
}

// dragTo presses the card with id and releases it with its top-left at (x, y)
func (h *harness) dragTo(id int, x, y float64) {
	h.t.Helper()
	h.settle()
	h.freeze()

	slot, ok := h.c.state.SlotOf(id)
	if !ok {
		h.t.Fatalf("card %d is not active, slots %v", id, h.c.state.Slots)
	}
	px, py := float64(slot*18)+1, 3.0

	h.c.HandlePointer(input.PointerEvent{ID: 0, X: px, Y: py, Phase: input.PhaseDown})
	if h.c.State().DraggingCard != id {
		h.t.Fatalf("press did not pick card %d", id)
	}
	h.c.HandlePointer(input.PointerEvent{ID: 0, X: x + 1, Y: y + 1, Phase: input.PhaseMove})
	h.c.HandlePointer(input.PointerEvent{ID: 0, X: x + 1, Y: y + 1, Phase: input.PhaseUp})
}

// dropInZone releases the card fully inside the zone
func (h *harness) dropInZone(id int) {
	h.t.Helper()
	h.dragTo(id, 40, 31)
}

func (h *harness) activeCorrect() (int, bool) {
	for _, id := range h.c.state.Slots {
		if id == engine.EmptySlot || h.c.state.CollectedCorrect.Has(id) {
			continue
		}
		if card, _ := h.c.state.Card(id); card.Correct {
			return id, true
		}
	}
	return 0, false
}
