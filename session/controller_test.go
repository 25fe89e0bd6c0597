package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
	"github.com/lixenwraith/culture-catch/input"
)

func TestNewRejectsInvalidOptions(t *testing.T) {
	bad := engine.DefaultSettings()
	bad.Slots = 0
	if _, err := New(Options{Settings: bad, Deck: scenarioDeck()}); !errors.Is(err, engine.ErrInvalidSettings) {
		t.Errorf("err = %v, want ErrInvalidSettings", err)
	}
	if _, err := New(Options{Settings: engine.DefaultSettings()}); !errors.Is(err, content.ErrNoCards) {
		t.Errorf("err = %v, want ErrNoCards", err)
	}
}

func TestStageProgression(t *testing.T) {
	h := newHarness(t, scenarioDeck(), scenarioSettings())

	if h.c.State().Stage != engine.StageWelcome || h.c.StageName() != "welcome" {
		t.Fatalf("initial stage %v", h.c.State().Stage)
	}
	if h.c.Replay() {
		t.Error("replay must be refused before the session ended")
	}

	// Pointer input is ignored outside Playing
	h.c.HandlePointer(input.PointerEvent{X: 1, Y: 3, Phase: input.PhaseDown})
	if h.c.State().DraggingCard != engine.EmptySlot {
		t.Error("press in Welcome must be ignored")
	}

	h.c.Start()
	if h.c.State().Stage != engine.StageCountdown || h.c.State().Countdown != 3 {
		t.Fatalf("after start: %+v", h.c.State())
	}
	if h.c.Start() {
		t.Error("second start must be refused")
	}

	var remaining []int
	for h.c.State().Stage == engine.StageCountdown {
		h.c.SecondTick()
	}
	for _, ev := range h.log.events {
		if ev.Type == events.EventCountdownTick {
			remaining = append(remaining, ev.Payload.(*events.CountdownPayload).Remaining)
		}
	}
	if len(remaining) != 4 || remaining[0] != 3 || remaining[3] != 0 {
		t.Errorf("countdown steps = %v, want [3 2 1 0]", remaining)
	}

	snap := h.c.State()
	if snap.Stage != engine.StagePlaying || snap.TimeRemaining != 90 {
		t.Fatalf("playing snapshot %+v", snap)
	}
	want := []int{0, 1, 2, 3, 4}
	for i, id := range want {
		if snap.Slots[i] != id {
			t.Errorf("slot %d = %d, want %d", i, snap.Slots[i], id)
		}
	}
	if h.log.count(events.EventSessionStart) != 1 {
		t.Error("session-start must fire once")
	}
}

func TestZeroCountdownStartsImmediately(t *testing.T) {
	settings := scenarioSettings()
	settings.CountdownSeconds = 0
	h := newHarness(t, scenarioDeck(), settings)

	h.c.Start()
	if h.c.State().Stage != engine.StagePlaying {
		t.Errorf("stage = %v, want playing", h.c.State().Stage)
	}
}

// Scenario: all six correct cards dropped without mistakes
func TestScenarioAllCorrect(t *testing.T) {
	h := newHarness(t, scenarioDeck(), scenarioSettings())
	h.play()
	if rs := h.c.RenderState(); rs.Active != 5 || rs.Queued != 5 {
		t.Fatalf("active=%d queued=%d, want 5 and 5", rs.Active, rs.Queued)
	}

	for dropped := 0; dropped < 6; dropped++ {
		id, ok := h.activeCorrect()
		if !ok {
			t.Fatalf("no active correct card after %d drops, slots %v", dropped, h.c.state.Slots)
		}
		h.dropInZone(id)

		snap := h.c.State()
		if snap.Score != dropped+1 {
			t.Fatalf("score = %d after %d drops", snap.Score, dropped+1)
		}
		if dropped < 5 && snap.Stage != engine.StagePlaying {
			t.Fatalf("ended early after %d drops", dropped+1)
		}
	}

	// The last drop ended the session in the same call that scored it
	snap := h.c.State()
	if snap.Stage != engine.StageEnded || snap.EndReason != engine.EndCompleted {
		t.Fatalf("stage=%v reason=%v", snap.Stage, snap.EndReason)
	}

	res, ok := h.c.Result()
	if !ok {
		t.Fatal("result missing")
	}
	if res.FinalScore != 6 || res.EndReason != engine.EndCompleted || len(res.CollectedWrong) != 0 || len(res.CollectedCorrect) != 6 {
		t.Errorf("result = %+v", res)
	}
	if res.CollectedWrong == nil {
		t.Error("collectedWrong should be an empty list, not nil")
	}
	if res.Email != "player@example.com" || res.Region != "Berlin" {
		t.Errorf("result identity = %q/%q", res.Email, res.Region)
	}
	if h.log.count(events.EventSessionEnd) != 1 || h.log.count(events.EventSessionCompleted) != 1 {
		t.Errorf("end events: %d session-end, %d completed", h.log.count(events.EventSessionEnd), h.log.count(events.EventSessionCompleted))
	}

	last := h.log.events[len(h.log.events)-1]
	if last.Type != events.EventSessionEnd {
		t.Fatalf("last event = %v", last.Type)
	}
	if p := last.Payload.(*events.SessionEndPayload); p.Result.FinalScore != 6 {
		t.Errorf("session-end payload score = %d", p.Result.FinalScore)
	}
}

// Scenario: two correct, three wrong, then the timer runs out
func TestScenarioTimeout(t *testing.T) {
	h := newHarness(t, scenarioDeck(), scenarioSettings())
	h.play()

	h.dropInZone(0)
	h.dropInZone(2)
	h.dropInZone(1)
	h.dropInZone(3)
	h.dropInZone(1)

	for i := 0; i < 89; i++ {
		h.c.SecondTick()
	}
	if h.c.State().Stage != engine.StagePlaying {
		t.Fatal("ended before the clock reached zero")
	}
	h.c.SecondTick()

	res, ok := h.c.Result()
	if !ok {
		t.Fatal("result missing")
	}
	if res.FinalScore != -1 || res.EndReason != engine.EndTimeout {
		t.Errorf("score=%d reason=%v, want -1 timeout", res.FinalScore, res.EndReason)
	}
	if len(res.CollectedCorrect) != 2 || len(res.CollectedWrong) != 2 || res.CollectedWrong[0] != 1 || res.CollectedWrong[1] != 3 {
		t.Errorf("collected correct=%v wrong=%v", res.CollectedCorrect, res.CollectedWrong)
	}

	// Further ticks neither re-end nor move the clock
	for i := 0; i < 5; i++ {
		h.c.SecondTick()
		h.c.Tick()
	}
	if h.log.count(events.EventSessionEnd) != 1 || h.c.State().EndReason != engine.EndTimeout {
		t.Error("end must be recorded exactly once")
	}
}

// Scenario: the content source fails and the fallback deck is playable
func TestScenarioFallbackDeck(t *testing.T) {
	failing := content.SourceFunc(func(context.Context) (content.Deck, error) {
		return content.Deck{}, errors.New("connection refused")
	})
	deck := content.NewLoader(failing, zerolog.Nop()).Load(context.Background())
	if !deck.Fallback || len(deck.Cards) < 2 {
		t.Fatalf("fallback deck = %+v", deck)
	}

	h := newHarness(t, deck, scenarioSettings())
	if h.c.State().Stage != engine.StageWelcome {
		t.Fatal("fallback session must reach Welcome")
	}
	h.play()

	id, ok := h.activeCorrect()
	if !ok {
		t.Fatal("fallback deck has no active correct card")
	}
	h.dropInZone(id)
	if h.c.State().Score != 1 {
		t.Errorf("score = %d, want 1", h.c.State().Score)
	}
}

// Scenario: a second press while dragging is ignored
func TestScenarioFirstDragWins(t *testing.T) {
	h := newHarness(t, scenarioDeck(), scenarioSettings())
	h.play()
	h.freeze()

	h.c.HandlePointer(input.PointerEvent{ID: 1, X: 1, Y: 3, Phase: input.PhaseDown})
	h.c.HandlePointer(input.PointerEvent{ID: 2, X: 19, Y: 3, Phase: input.PhaseDown})
	h.c.HandlePointer(input.PointerEvent{ID: 2, X: 50, Y: 20, Phase: input.PhaseMove})

	if h.c.State().DraggingCard != 0 {
		t.Fatalf("dragging %d, want 0", h.c.State().DraggingCard)
	}
	if !h.c.state.Floating(1) {
		t.Error("card B must keep floating")
	}
	if k := h.c.state.Kinetics[1]; k.X != 18 || k.Y != 2 {
		t.Errorf("card B moved to (%v,%v)", k.X, k.Y)
	}
	if h.log.count(events.EventDragStart) != 1 {
		t.Errorf("drag-start fired %d times", h.log.count(events.EventDragStart))
	}
}

// Scenario: a drop touching the zone's edge counts as inside
func TestScenarioBoundaryDrop(t *testing.T) {
	h := newHarness(t, scenarioDeck(), scenarioSettings())
	h.play()

	// Card bottom edge at y=30 coincides with the zone's top edge
	h.dragTo(0, 40, 27)

	snap := h.c.State()
	if snap.Score != 1 || len(snap.CollectedCorrect) != 1 {
		t.Errorf("score=%d collected=%v", snap.Score, snap.CollectedCorrect)
	}
	if h.log.count(events.EventDropCorrect) != 1 {
		t.Error("boundary drop must be scored as correct")
	}
}

// Scenario: correct cards run out while wrong cards remain active
func TestScenarioCompletesWithFewerSlots(t *testing.T) {
	h := newHarness(t, buildDeck("ccw"), scenarioSettings())
	h.play()

	h.dropInZone(0)
	h.settle()
	if rs := h.c.RenderState(); rs.Active != 2 || rs.Queued != 0 {
		t.Fatalf("active=%d queued=%d, want 2 and 0 after an unrefillable vacancy", rs.Active, rs.Queued)
	}

	h.dropInZone(1)
	snap := h.c.State()
	if snap.Stage != engine.StageEnded || snap.EndReason != engine.EndCompleted {
		t.Fatalf("stage=%v reason=%v", snap.Stage, snap.EndReason)
	}
	if h.log.count(events.EventSessionEnd) != 1 {
		t.Error("session-end must fire once")
	}

	for i := 0; i < 50; i++ {
		h.c.Tick()
	}
}

func TestScoreClampedWithDefaultBounds(t *testing.T) {
	settings := scenarioSettings()
	settings.ScoreMin, settings.ScoreMax = -3, 3
	h := newHarness(t, scenarioDeck(), settings)
	h.play()

	for i := 0; i < 5; i++ {
		h.dropInZone(1)
	}
	if h.c.State().Score != -3 {
		t.Errorf("score = %d, want clamp at -3", h.c.State().Score)
	}
}

func TestReplayResetsEverything(t *testing.T) {
	h := newHarness(t, buildDeck("cw"), scenarioSettings())
	h.play()
	h.dropInZone(1)
	h.dropInZone(0)
	if h.c.State().Stage != engine.StageEnded {
		t.Fatal("session should have completed")
	}

	if !h.c.Replay() {
		t.Fatal("replay refused")
	}
	snap := h.c.State()
	if snap.Stage != engine.StageWelcome || snap.Score != 0 || snap.EndReason != engine.EndNone {
		t.Errorf("after replay %+v", snap)
	}
	if len(snap.CollectedCorrect) != 0 || len(snap.CollectedWrong) != 0 {
		t.Error("outcome sets must be empty")
	}
	for _, id := range snap.Slots {
		if id != engine.EmptySlot {
			t.Errorf("slots not reset: %v", snap.Slots)
		}
	}
	if _, ok := h.c.Result(); ok {
		t.Error("result must be cleared on replay")
	}

	h.play()
	h.dropInZone(0)
	res, _ := h.c.Result()
	if res.FinalScore != 1 || len(res.CollectedWrong) != 0 {
		t.Errorf("second round result %+v", res)
	}
	if h.log.count(events.EventSessionEnd) != 2 {
		t.Errorf("session-end fired %d times over two rounds", h.log.count(events.EventSessionEnd))
	}
}

func TestSessionWithoutGeometry(t *testing.T) {
	c, err := New(Options{Settings: scenarioSettings(), Deck: scenarioDeck()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Start()
	for i := 0; i < 3; i++ {
		c.SecondTick()
	}
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	c.HandlePointer(input.PointerEvent{X: 5, Y: 5, Phase: input.PhaseDown})
	if c.State().DraggingCard != engine.EmptySlot {
		t.Error("no drag may start without geometry")
	}
	if rs := c.RenderState(); rs.Geometry || len(rs.Items) != 0 {
		t.Errorf("render state without geometry: %+v", rs)
	}
}

func TestTimeWarningEvents(t *testing.T) {
	settings := scenarioSettings()
	settings.DurationSeconds = 8
	h := newHarness(t, scenarioDeck(), settings)
	h.play()

	for h.c.State().Stage == engine.StagePlaying {
		h.c.SecondTick()
	}
	if got := h.log.count(events.EventTimeWarning); got != 5 {
		t.Errorf("time warnings = %d, want 5", got)
	}
	if h.log.count(events.EventSessionTimeout) != 1 {
		t.Error("timeout must fire once")
	}
}

// Randomized input must never break the session invariants
func TestInvariantsUnderRandomInput(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		settings := scenarioSettings()
		settings.Shuffle = true
		settings.Seed = seed
		settings.ScoreMin, settings.ScoreMax = -3, 3
		h := newHarness(t, scenarioDeck(), settings)
		h.play()

		rng := rand.New(rand.NewPCG(seed, 7))
		lastCollected := 0
		for step := 0; step < 4000 && h.c.State().Stage == engine.StagePlaying; step++ {
			switch r := rng.IntN(100); {
			case r < 60:
				h.c.Tick()
			case r < 62:
				h.c.SecondTick()
			default:
				ev := input.PointerEvent{
					ID:    rng.IntN(2),
					X:     rng.Float64() * 96,
					Y:     rng.Float64() * 36,
					Phase: input.Phase(rng.IntN(3)),
				}
				h.c.HandlePointer(ev)
			}

			snap := h.c.State()
			if snap.Score < settings.ScoreMin || snap.Score > settings.ScoreMax {
				t.Fatalf("seed %d: score %d out of bounds", seed, snap.Score)
			}
			if len(snap.CollectedCorrect) < lastCollected {
				t.Fatalf("seed %d: collected set shrank", seed)
			}
			lastCollected = len(snap.CollectedCorrect)

			seen := map[int]bool{}
			for _, id := range snap.Slots {
				if id == engine.EmptySlot {
					continue
				}
				if seen[id] {
					t.Fatalf("seed %d: duplicate card %d in %v", seed, id, snap.Slots)
				}
				seen[id] = true
			}
			dupe := map[int]bool{}
			for _, id := range snap.CollectedCorrect {
				if card, _ := h.c.state.Card(id); !card.Correct || dupe[id] {
					t.Fatalf("seed %d: bad collected id %d", seed, id)
				}
				dupe[id] = true
			}
		}

		// Drain the clock so every run ends
		for i := 0; i < 100 && h.c.State().Stage == engine.StagePlaying; i++ {
			h.c.SecondTick()
		}
		if h.c.State().EndReason == engine.EndNone || h.log.count(events.EventSessionEnd) != 1 {
			t.Fatalf("seed %d: reason=%v ends=%d", seed, h.c.State().EndReason, h.log.count(events.EventSessionEnd))
		}
	}
}
