package engine

import (
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/core"
	"github.com/lixenwraith/culture-catch/vmath"
)

// ItemView is the declarative view of one active card
type ItemView struct {
	CardID int
	Slot   int
	Label  string
	Emoji  string
	Rect   core.Area // Screen cells

	Dragging  bool
	Hover     bool
	Returning bool
	Vanishing bool
	Progress  float64 // Return or vanish completion in [0,1]
}

// RenderState is the per-tick presentation snapshot; presentation layers read only this
type RenderState struct {
	Stage         Stage
	Countdown     int
	TimeRemaining int
	Warning       bool
	EndReason     EndReason

	Score       int
	ScoreMin    int
	ScoreMax    int
	FillPercent int
	Collected   int
	Wrong       int
	Total       int
	Active      int // Occupied slots
	Queued      int // Cards still eligible for a slot, filled in by the session

	Zone     ZoneState
	ZoneArea core.Area
	PlayArea core.Area
	Geometry bool

	Items []ItemView
	Tick  uint64
}

// BuildRenderState projects the engine state into a render snapshot
func BuildRenderState(s *EngineState) RenderState {
	rs := RenderState{
		Stage:         s.Session.Stage,
		Countdown:     s.Session.Countdown,
		TimeRemaining: s.Session.TimeRemaining,
		Warning:       s.Clock.Warning(),
		EndReason:     s.Session.EndReason,
		Score:         s.Score.Value,
		ScoreMin:      s.Score.Min,
		ScoreMax:      s.Score.Max,
		FillPercent:   s.Score.FillPercent(),
		Collected:     s.CollectedCorrect.Len(),
		Wrong:         s.CollectedWrong.Len(),
		Total:         s.TotalCorrect,
		Active:        s.ActiveCount(),
		Zone:          s.Zone.State,
		ZoneArea:      s.Geometry.Zone,
		PlayArea:      s.Geometry.Play,
		Geometry:      s.Geometry.Ready(),
		Tick:          s.Tick,
	}

	if s.Session.Stage != StagePlaying || !s.Geometry.HasPlay {
		return rs
	}

	const w, h = constants.CardWidth, constants.CardHeight
	origin := core.Point{X: s.Geometry.Play.X, Y: s.Geometry.Play.Y}

	for slot, id := range s.Slots {
		if id == EmptySlot {
			continue
		}
		card, _ := s.Card(id)
		view := ItemView{CardID: id, Slot: slot, Label: card.Label, Emoji: card.Emoji}

		if s.Drag != nil && s.Drag.CardID == id {
			view.Dragging = true
			view.Hover = s.Drag.Hover
			view.Rect = core.Area{X: s.Drag.Pos.X, Y: s.Drag.Pos.Y, Width: w, Height: h}
			rs.Items = append(rs.Items, view)
			continue
		}

		k, ok := s.Kinetics[id]
		if !ok || !k.Anchored {
			continue
		}
		pos := k.Position()

		if ret, ok := s.Returns[id]; ok {
			view.Returning = true
			view.Progress = ret.Progress()
			pos = vmath.Lerp(ret.From, pos, view.Progress)
		}
		if van, ok := s.Vanishes[slot]; ok {
			view.Vanishing = true
			view.Progress = van.Progress()
		}

		pos = pos.Add(origin)
		view.Rect = core.Area{X: pos.X, Y: pos.Y, Width: w, Height: h}
		rs.Items = append(rs.Items, view)
	}
	return rs
}
