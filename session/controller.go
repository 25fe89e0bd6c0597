package session

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/engine/fsm"
	"github.com/lixenwraith/culture-catch/events"
	"github.com/lixenwraith/culture-catch/input"
	"github.com/lixenwraith/culture-catch/systems"
)

// Options configures a Controller
type Options struct {
	Settings engine.Settings
	Deck     content.Deck

	// Geometry is sampled once per tick; nil leaves the session without geometry
	Geometry engine.GeometryProvider

	// Time stamps events and results; defaults to the system clock
	Time engine.TimeProvider

	Logger zerolog.Logger
	Email  string
}

// Controller owns one game session and its stage machine
// Not safe for concurrent use: every method must run on the engine loop goroutine
type Controller struct {
	settings engine.Settings
	deck     content.Deck
	email    string
	geometry engine.GeometryProvider
	clock    engine.TimeProvider
	rng      *rand.Rand
	log      zerolog.Logger

	state   *engine.EngineState
	machine *fsm.Machine[*Controller]

	queue  *events.EventQueue
	router *events.Router

	systems  []engine.System
	dragSys  *systems.DragSystem
	queueSys *systems.QueueSystem

	pendingReason engine.EndReason
	result        *engine.Result
	startedAt     time.Time
	round         int
}

// New validates the options and enters the Welcome stage
func New(opts Options) (*Controller, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Deck.Cards) == 0 {
		return nil, fmt.Errorf("session deck: %w", content.ErrNoCards)
	}

	c := &Controller{
		settings: opts.Settings,
		deck:     opts.Deck,
		email:    opts.Email,
		geometry: opts.Geometry,
		clock:    opts.Time,
		log:      opts.Logger.With().Str("component", "session").Logger(),
		queue:    events.NewEventQueue(),
	}
	if c.clock == nil {
		c.clock = engine.NewTimeProvider()
	}
	if opts.Settings.Shuffle {
		c.rng = content.NewRand(opts.Settings.Seed)
	}
	c.router = events.NewRouter(c.queue)

	drop := systems.NewDropSystem(c)
	c.dragSys = systems.NewDragSystem(c, drop)
	c.queueSys = systems.NewQueueSystem(c)
	c.systems = []engine.System{
		systems.NewFloatSystem(),
		c.dragSys,
		systems.NewAnimationSystem(),
		c.queueSys,
	}
	sort.SliceStable(c.systems, func(i, j int) bool {
		return c.systems[i].Priority() < c.systems[j].Priority()
	})

	m, err := buildMachine()
	if err != nil {
		return nil, err
	}
	c.machine = m
	if err := c.machine.Init(c, StateWelcome); err != nil {
		return nil, fmt.Errorf("stage machine init: %w", err)
	}
	c.router.DispatchAll()

	return c, nil
}

// Subscribe registers a feedback handler; handlers run synchronously on the engine loop
func (c *Controller) Subscribe(h events.Handler) {
	c.router.Register(h)
}

// Emit queues a feedback event stamped with the current tick
func (c *Controller) Emit(t events.EventType, payload any) {
	c.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      c.state.Tick,
		Timestamp: c.clock.Now(),
	})
}

// Start leaves the Welcome stage; false when not in Welcome
func (c *Controller) Start() bool {
	defer c.router.DispatchAll()
	if !c.machine.HandleEvent(c, events.EventStartRequest) {
		return false
	}
	// A zero-length countdown goes straight to Playing
	c.machine.Update(c, 0)
	return true
}

// Replay returns from Ended to a fresh Welcome; false when the session has not ended
func (c *Controller) Replay() bool {
	defer c.router.DispatchAll()
	return c.machine.HandleEvent(c, events.EventReplayRequest)
}

// Tick advances the simulation by one animation step
func (c *Controller) Tick() {
	s := c.state
	s.Tick++
	s.Geometry = engine.SampleGeometry(c.geometry)

	if s.Session.Stage == engine.StagePlaying {
		for _, sys := range c.systems {
			sys.Update(s)
		}
		c.checkCompletion()
	}

	c.machine.Update(c, constants.FrameUpdateInterval)
	c.router.DispatchAll()
}

// SecondTick advances the countdown or the session clock by one second
func (c *Controller) SecondTick() {
	s := c.state

	switch s.Session.Stage {
	case engine.StageCountdown:
		if s.Session.Countdown > 0 {
			s.Session.Countdown--
			c.Emit(events.EventCountdownTick, &events.CountdownPayload{Remaining: s.Session.Countdown})
		}
		c.machine.Update(c, 0)

	case engine.StagePlaying:
		timedOut := s.Clock.Tick()
		s.Session.TimeRemaining = s.Clock.Remaining()
		if timedOut {
			c.finish(engine.EndTimeout)
			break
		}
		if s.Clock.Warning() {
			c.Emit(events.EventTimeWarning, &events.ClockPayload{Remaining: s.Clock.Remaining()})
		}
	}

	c.router.DispatchAll()
}

// HandlePointer feeds one normalized pointer event to the drag controller
// Ignored outside the Playing stage
func (c *Controller) HandlePointer(ev input.PointerEvent) {
	defer c.router.DispatchAll()
	if c.state.Session.Stage != engine.StagePlaying {
		return
	}

	drop, ok := c.dragSys.HandlePointer(c.state, ev)
	if !ok {
		return
	}
	c.log.Debug().
		Int("card", drop.CardID).
		Int("slot", drop.Slot).
		Stringer("outcome", drop.Outcome).
		Bool("correct", drop.Correct).
		Int("score", c.state.Score.Value).
		Msg("drop resolved")

	// The final correct drop ends the session in the same step that scored it
	c.checkCompletion()
}

func (c *Controller) checkCompletion() {
	if c.state.AllCorrectCollected() {
		c.finish(engine.EndCompleted)
	}
}

// finish requests the Ended stage; the first reason while Playing wins
func (c *Controller) finish(reason engine.EndReason) {
	if c.state.Session.Stage != engine.StagePlaying {
		return
	}
	ev := events.EventSessionTimeout
	if reason == engine.EndCompleted {
		ev = events.EventSessionCompleted
	}
	c.pendingReason = reason
	c.Emit(ev, nil)
	c.machine.HandleEvent(c, ev)
}

// RenderState returns the declarative view of the current tick
func (c *Controller) RenderState() engine.RenderState {
	rs := engine.BuildRenderState(c.state)
	rs.Queued = c.queueSys.Remaining(c.state)
	return rs
}

// Result returns the record of the last finished session
func (c *Controller) Result() (engine.Result, bool) {
	if c.result == nil {
		return engine.Result{}, false
	}
	return *c.result, true
}

// Deck returns the loaded deck
func (c *Controller) Deck() content.Deck {
	return c.deck
}

// Snapshot is a read-only copy of the session's observable state
type Snapshot struct {
	Stage            engine.Stage
	Countdown        int
	TimeRemaining    int
	EndReason        engine.EndReason
	Score            int
	FillPercent      int
	Slots            []int
	CollectedCorrect []int
	CollectedWrong   []int
	TotalCorrect     int
	DraggingCard     int // EmptySlot when idle
	Tick             uint64
}

// State returns a copy of the session's observable state
func (c *Controller) State() Snapshot {
	s := c.state
	snap := Snapshot{
		Stage:            s.Session.Stage,
		Countdown:        s.Session.Countdown,
		TimeRemaining:    s.Session.TimeRemaining,
		EndReason:        s.Session.EndReason,
		Score:            s.Score.Value,
		FillPercent:      s.Score.FillPercent(),
		Slots:            append([]int(nil), s.Slots...),
		CollectedCorrect: s.CollectedCorrect.Slice(),
		CollectedWrong:   s.CollectedWrong.Slice(),
		TotalCorrect:     s.TotalCorrect,
		DraggingCard:     engine.EmptySlot,
		Tick:             s.Tick,
	}
	if s.Drag != nil {
		snap.DraggingCard = s.Drag.CardID
	}
	return snap
}

// StageName returns the active stage machine node name
func (c *Controller) StageName() string {
	return c.machine.CurrentName()
}
