package session

import (
	"fmt"

	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/engine/fsm"
	"github.com/lixenwraith/culture-catch/events"
)

// Stage graph node IDs
const (
	StateWelcome fsm.StateID = iota + 2
	StateCountdown
	StatePlaying
	StateEnded
)

// buildMachine wires the Welcome -> Countdown -> Playing -> Ended graph
func buildMachine() (*fsm.Machine[*Controller], error) {
	m := fsm.NewMachine[*Controller]()

	m.RegisterAction("reset-state", (*Controller).actResetState)
	m.RegisterAction("set-stage", (*Controller).actSetStage)
	m.RegisterAction("begin-countdown", (*Controller).actBeginCountdown)
	m.RegisterAction("begin-play", (*Controller).actBeginPlay)
	m.RegisterAction("halt-play", (*Controller).actHaltPlay)
	m.RegisterAction("finish", (*Controller).actFinish)

	m.RegisterGuard("deck-ready", func(c *Controller) bool { return len(c.state.Cards) > 0 })
	m.RegisterGuard("countdown-done", func(c *Controller) bool { return c.state.Session.Countdown <= 0 })
	m.RegisterGuard("timed-out", func(c *Controller) bool { return c.state.Clock.TimedOut() })
	m.RegisterGuard("all-collected", func(c *Controller) bool { return c.state.AllCorrectCollected() })

	m.AddState(fsm.StateRoot, "session", fsm.StateNone)
	m.AddState(StateWelcome, "welcome", fsm.StateRoot)
	m.AddState(StateCountdown, "countdown", fsm.StateRoot)
	m.AddState(StatePlaying, "playing", fsm.StateRoot)
	m.AddState(StateEnded, "ended", fsm.StateRoot)

	steps := []error{
		m.Enter(StateWelcome, "reset-state", nil),
		m.Enter(StateWelcome, "set-stage", engine.StageWelcome),
		m.Enter(StateCountdown, "set-stage", engine.StageCountdown),
		m.Enter(StateCountdown, "begin-countdown", nil),
		m.Enter(StatePlaying, "set-stage", engine.StagePlaying),
		m.Enter(StatePlaying, "begin-play", nil),
		m.Exit(StatePlaying, "halt-play", nil),
		m.Enter(StateEnded, "set-stage", engine.StageEnded),
		m.Enter(StateEnded, "finish", nil),

		m.On(StateWelcome, events.EventStartRequest, StateCountdown, "deck-ready"),
		m.On(StateCountdown, events.EventNone, StatePlaying, "countdown-done"),
		m.On(StatePlaying, events.EventSessionTimeout, StateEnded, "timed-out"),
		m.On(StatePlaying, events.EventSessionCompleted, StateEnded, "all-collected"),
		m.On(StateEnded, events.EventReplayRequest, StateWelcome, ""),
	}
	for _, err := range steps {
		if err != nil {
			return nil, fmt.Errorf("stage graph: %w", err)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return nil, fmt.Errorf("stage graph: %w", err)
	}
	return m, nil
}

func (c *Controller) actResetState(_ any) {
	c.round++
	var order []int
	if c.settings.Shuffle {
		order = content.PresentationOrder(len(c.deck.Cards), c.rng)
	} else {
		order = content.PresentationOrder(len(c.deck.Cards), nil)
	}
	c.state = engine.NewEngineState(c.settings, c.deck.Cards, order)
	c.state.Region = c.deck.Region
	c.pendingReason = engine.EndNone
	c.result = nil
	c.log.Debug().Int("round", c.round).Ints("order", order).Msg("session reset")
}

func (c *Controller) actSetStage(args any) {
	if stage, ok := args.(engine.Stage); ok {
		c.state.Session.Stage = stage
		c.log.Debug().Stringer("stage", stage).Msg("stage entered")
	}
}

func (c *Controller) actBeginCountdown(_ any) {
	c.state.Session.Countdown = c.settings.CountdownSeconds
	c.Emit(events.EventCountdownTick, &events.CountdownPayload{Remaining: c.state.Session.Countdown})
}

func (c *Controller) actBeginPlay(_ any) {
	s := c.state
	s.Geometry = engine.SampleGeometry(c.geometry)
	c.queueSys.Fill(s)
	s.Clock.Start()
	s.Session.TimeRemaining = s.Clock.Remaining()
	c.startedAt = c.clock.Now()

	c.Emit(events.EventSessionStart, &events.SessionStartPayload{
		Duration:     s.Clock.Duration(),
		TotalCorrect: s.TotalCorrect,
	})
	c.log.Info().Int("cards", len(s.Cards)).Int("correct", s.TotalCorrect).Int("slots", len(s.Slots)).Msg("session started")
}

func (c *Controller) actHaltPlay(_ any) {
	s := c.state
	s.Clock.Pause()
	s.Drag = nil
	s.Zone = engine.ZoneFlash{}
}

func (c *Controller) actFinish(_ any) {
	s := c.state
	s.Session.SetEndReason(c.pendingReason)

	res := engine.Result{
		FinalScore:       s.Score.Value,
		CollectedCorrect: s.CollectedCorrect.Slice(),
		CollectedWrong:   s.CollectedWrong.Slice(),
		EndReason:        s.Session.EndReason,
		TotalCorrect:     s.TotalCorrect,
		Email:            c.email,
		Region:           s.Region,
		StartedAt:        c.startedAt,
		FinishedAt:       c.clock.Now(),
	}
	c.result = &res

	c.Emit(events.EventSessionEnd, &events.SessionEndPayload{Result: res})
	c.log.Info().
		Int("score", res.FinalScore).
		Stringer("reason", res.EndReason).
		Int("correct", len(res.CollectedCorrect)).
		Int("wrong", len(res.CollectedWrong)).
		Msg("session ended")
}
