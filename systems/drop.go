package systems

import (
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/core"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
	"github.com/lixenwraith/culture-catch/vmath"
)

// Outcome is the classification of a released card
type Outcome uint8

const (
	OutcomeOutside Outcome = iota
	OutcomeInside
)

func (o Outcome) String() string {
	if o == OutcomeInside {
		return "inside"
	}
	return "outside"
}

// Classify tests closed-interval overlap on both axes; touching edges count as inside
func Classify(item, zone core.Area) Outcome {
	if vmath.AreaOverlaps(item, zone) {
		return OutcomeInside
	}
	return OutcomeOutside
}

// Drop is a resolved release
type Drop struct {
	CardID  int
	Slot    int
	Outcome Outcome
	Correct bool
	Delta   int
}

// DropSystem applies release outcomes to score, outcome sets and transitions
type DropSystem struct {
	emitter Emitter
}

func NewDropSystem(emitter Emitter) *DropSystem {
	return &DropSystem{emitter: emitterOrNop(emitter)}
}

// Resolve ends the drag session with the card at its current drag position
// ok=false when there is no session or geometry is unavailable; the session is then left untouched
func (s *DropSystem) Resolve(state *engine.EngineState) (Drop, bool) {
	d := state.Drag
	if d == nil || !state.Geometry.Ready() {
		return Drop{}, false
	}
	state.Drag = nil

	if state.Zone.Ticks == 0 {
		state.Zone.State = engine.ZoneIdle
	}

	play, zone := state.Geometry.Play, state.Geometry.Zone
	item := core.Area{X: d.Pos.X, Y: d.Pos.Y, Width: constants.CardWidth, Height: constants.CardHeight}
	card, _ := state.Card(d.CardID)

	drop := Drop{CardID: d.CardID, Slot: d.Slot, Outcome: Classify(item, zone), Correct: card.Correct}
	playOrigin := core.Point{X: play.X, Y: play.Y}

	switch {
	case drop.Outcome == OutcomeInside && card.Correct:
		drop.Delta = state.Settings.CorrectDelta
		state.Score.ApplyDelta(drop.Delta)
		state.CollectedCorrect.Add(d.CardID)
		state.Zone = engine.ZoneFlash{State: engine.ZoneCorrect, Ticks: constants.ZoneFlashTicks}

		// The card vanishes where it was dropped
		if k, ok := state.Kinetics[d.CardID]; ok {
			local := d.Pos.Sub(playOrigin)
			k.X, k.Y = local.X, local.Y
		}
		state.Vanishes[d.Slot] = &engine.Transition{CardID: d.CardID, Slot: d.Slot, Total: constants.VanishTicks}
		s.emitter.Emit(events.EventDropCorrect, &events.DropPayload{
			CardID: d.CardID, Slot: d.Slot, Delta: drop.Delta, Score: state.Score.Value,
		})

	case drop.Outcome == OutcomeInside:
		resumeAt(state, d)
		drop.Delta = state.Settings.WrongDelta
		state.Score.ApplyDelta(drop.Delta)
		state.CollectedWrong.Add(d.CardID)
		state.Zone = engine.ZoneFlash{State: engine.ZoneWrong, Ticks: constants.ZoneFlashTicks}

		// Bottom-centre of the zone, card box hanging above it
		bc := core.Point{X: zone.X + zone.Width/2, Y: zone.Bottom()}.Sub(playOrigin)
		from := core.Point{X: bc.X - constants.CardWidth/2, Y: bc.Y - constants.CardHeight}
		state.Returns[d.CardID] = &engine.Transition{
			CardID: d.CardID, Slot: d.Slot, From: from, Edge: core.EdgeBottom, Total: constants.ReturnTicks,
		}
		s.emitter.Emit(events.EventDropWrong, &events.DropPayload{
			CardID: d.CardID, Slot: d.Slot, Delta: drop.Delta, Score: state.Score.Value,
		})

	default:
		resumeAt(state, d)
		centre := vmath.AreaCenter(item)
		edge := vmath.NearestEdge(play, centre)
		state.Returns[d.CardID] = &engine.Transition{
			CardID: d.CardID, Slot: d.Slot, From: ReturnOrigin(play, edge, centre), Edge: edge, Total: constants.ReturnTicks,
		}
		s.emitter.Emit(events.EventDropMissed, &events.DropPayload{
			CardID: d.CardID, Slot: d.Slot, Score: state.Score.Value,
		})
	}

	return drop, true
}

// resumeAt puts a rejected card back on the floating position it was picked up from;
// the return transition ends there
func resumeAt(state *engine.EngineState, d *engine.DragSession) {
	if k, ok := state.Kinetics[d.CardID]; ok {
		k.X, k.Y = d.Origin.X, d.Origin.Y
	}
}

// ReturnOrigin is the play-area-local top-left a thrown-back card starts from
// ReturnPad cells beyond the edge, aligned with the release point along that edge
func ReturnOrigin(play core.Area, edge core.Edge, release core.Point) core.Point {
	const w, h float64 = constants.CardWidth, constants.CardHeight
	local := core.Point{X: release.X - play.X, Y: release.Y - play.Y}

	p := core.Point{
		X: vmath.Clamp(local.X-w/2, 0, play.Width-w),
		Y: vmath.Clamp(local.Y-h/2, 0, play.Height-h),
	}
	switch edge {
	case core.EdgeLeft:
		p.X = -w - constants.ReturnPad
	case core.EdgeRight:
		p.X = play.Width + constants.ReturnPad
	case core.EdgeTop:
		p.Y = -h - constants.ReturnPad
	case core.EdgeBottom:
		p.Y = play.Height + constants.ReturnPad
	}
	return p
}
