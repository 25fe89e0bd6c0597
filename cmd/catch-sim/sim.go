package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/input"
	"github.com/lixenwraith/culture-catch/session"
)

// traceEntry is one recorded touch event, Tick counts animation ticks from the start of play
type traceEntry struct {
	Tick uint64 `json:"tick"`
	input.TouchEvent
}

// readTrace parses a JSON-lines touch trace; entries must be in tick order
func readTrace(r io.Reader) ([]traceEntry, error) {
	var out []traceEntry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e traceEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("trace line %d: %w", line, err)
		}
		if n := len(out); n > 0 && e.Tick < out[n-1].Tick {
			return nil, fmt.Errorf("trace line %d: tick %d before %d", line, e.Tick, out[n-1].Tick)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return out, nil
}

// bot is an autoplay player: it grabs a random settled card and drops correct ones in the zone
// With probability 1-accuracy it misjudges the card
type bot struct {
	deck     content.Deck
	rng      *rand.Rand
	accuracy float64
	think    uint64 // Ticks between gesture steps

	step    int
	holding bool
	target  struct{ x, y float64 }
	wait    uint64
}

func newBot(deck content.Deck, seed uint64, accuracy float64, think int) *bot {
	if think < 1 {
		think = 1
	}
	return &bot{
		deck:     deck,
		rng:      content.NewRand(seed),
		accuracy: accuracy,
		think:    uint64(think),
	}
}

// next returns the pointer event for this tick, if any
func (b *bot) next(rs engine.RenderState) (input.PointerEvent, bool) {
	if b.wait > 0 {
		b.wait--
		return input.PointerEvent{}, false
	}
	b.wait = b.think

	if !b.holding {
		item, ok := b.pick(rs)
		if !ok {
			return input.PointerEvent{}, false
		}
		cx := item.Rect.X + item.Rect.Width/2
		cy := item.Rect.Y + item.Rect.Height/2

		keep := b.deck.Cards[item.CardID].Correct
		if b.rng.Float64() >= b.accuracy {
			keep = !keep
		}
		if keep {
			b.target.x = rs.ZoneArea.X + rs.ZoneArea.Width/2
			b.target.y = rs.ZoneArea.Y + rs.ZoneArea.Height/2
		} else {
			// Released in place: a miss returns the card to the pool
			b.target.x, b.target.y = cx, cy
		}
		b.holding = true
		b.step = 0
		return input.PointerEvent{ID: input.MousePointerID, X: cx, Y: cy, Phase: input.PhaseDown}, true
	}

	b.step++
	if b.step == 1 {
		return input.PointerEvent{ID: input.MousePointerID, X: b.target.x, Y: b.target.y, Phase: input.PhaseMove}, true
	}
	b.holding = false
	return input.PointerEvent{ID: input.MousePointerID, X: b.target.x, Y: b.target.y, Phase: input.PhaseUp}, true
}

func (b *bot) pick(rs engine.RenderState) (engine.ItemView, bool) {
	var settled []engine.ItemView
	for _, it := range rs.Items {
		if it.Returning || it.Vanishing || it.Dragging {
			continue
		}
		if it.CardID < 0 || it.CardID >= len(b.deck.Cards) {
			continue
		}
		settled = append(settled, it)
	}
	if len(settled) == 0 {
		return engine.ItemView{}, false
	}
	return settled[b.rng.IntN(len(settled))], true
}

// simulator drives a controller in simulated time without a loop goroutine
type simulator struct {
	ctrl   *session.Controller
	clock  *engine.MockTimeProvider
	trace  []traceEntry
	touch  *input.TouchAdapter
	bot    *bot
	maxTks uint64
}

// run plays one session to the end and returns its result
func (s *simulator) run() (engine.Result, error) {
	if !s.ctrl.Start() {
		return engine.Result{}, fmt.Errorf("session did not start from %s", s.ctrl.StageName())
	}

	advance := func() {
		s.ctrl.Tick()
		for n := s.clock.Advance(constants.FrameUpdateInterval); n > 0; n-- {
			s.ctrl.SecondTick()
		}
	}

	for s.ctrl.State().Stage == engine.StageCountdown {
		advance()
	}

	var playTick uint64
	next := 0
	for s.ctrl.State().Stage == engine.StagePlaying {
		if playTick >= s.maxTks {
			return engine.Result{}, fmt.Errorf("session still playing after %d ticks", s.maxTks)
		}
		for next < len(s.trace) && s.trace[next].Tick <= playTick {
			if pe, ok := s.touch.Translate(s.trace[next].TouchEvent); ok {
				s.ctrl.HandlePointer(pe)
			}
			next++
		}
		if s.bot != nil {
			if pe, ok := s.bot.next(s.ctrl.RenderState()); ok {
				s.ctrl.HandlePointer(pe)
			}
		}
		advance()
		playTick++
	}

	res, ok := s.ctrl.Result()
	if !ok {
		return engine.Result{}, fmt.Errorf("session ended without a result")
	}
	return res, nil
}
