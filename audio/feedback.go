package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
)

// Feedback maps session events to audio cues
type Feedback struct {
	player Player
	muted  atomic.Bool
	log    zerolog.Logger
}

// NewFeedback creates a feedback handler around a player
func NewFeedback(p Player, logger zerolog.Logger) *Feedback {
	return &Feedback{
		player: p,
		log:    logger.With().Str("component", "audio").Logger(),
	}
}

// EventTypes implements events.Handler
func (f *Feedback) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventDragStart,
		events.EventHoverEnter,
		events.EventDropCorrect,
		events.EventDropWrong,
		events.EventDropMissed,
		events.EventCountdownTick,
		events.EventTimeWarning,
		events.EventSessionEnd,
	}
}

// HandleEvent implements events.Handler
func (f *Feedback) HandleEvent(ev events.GameEvent) {
	if f.muted.Load() || f.player == nil {
		return
	}
	st, ok := CueFor(ev)
	if !ok {
		return
	}
	f.log.Trace().Stringer("event", ev.Type).Stringer("cue", st).Msg("cue")
	f.player.Play(st)
}

// ToggleMute flips the mute state and returns the new value
func (f *Feedback) ToggleMute() bool {
	for {
		old := f.muted.Load()
		if f.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted sets the mute state
func (f *Feedback) SetMuted(m bool) { f.muted.Store(m) }

// Muted reports whether cues are suppressed
func (f *Feedback) Muted() bool { return f.muted.Load() }

// CueFor selects the cue for an event
func CueFor(ev events.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventDragStart:
		return SoundPickup, true
	case events.EventHoverEnter:
		return SoundHover, true
	case events.EventDropCorrect:
		return SoundCorrect, true
	case events.EventDropWrong:
		return SoundWrong, true
	case events.EventDropMissed:
		return SoundMiss, true
	case events.EventCountdownTick:
		if p, ok := ev.Payload.(*events.CountdownPayload); ok && p.Remaining == 0 {
			return SoundGo, true
		}
		return SoundCountdown, true
	case events.EventTimeWarning:
		return SoundTick, true
	case events.EventSessionEnd:
		if p, ok := ev.Payload.(*events.SessionEndPayload); ok && p.Result.EndReason == engine.EndCompleted {
			return SoundVictory, true
		}
		return SoundGameOver, true
	}
	return 0, false
}
