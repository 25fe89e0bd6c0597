package engine

import "github.com/lixenwraith/culture-catch/constants"

// SessionClock counts whole seconds down from a duration
// Advanced only by Tick while running; independent of the animation tick
type SessionClock struct {
	duration  int
	remaining int
	running   bool
	timedOut  bool
}

// NewSessionClock creates a stopped clock holding the full duration
func NewSessionClock(durationSeconds int) SessionClock {
	return SessionClock{duration: durationSeconds, remaining: durationSeconds}
}

// Start begins counting; no effect after timeout
func (c *SessionClock) Start() {
	if c.timedOut {
		return
	}
	c.running = true
}

// Pause stops counting and keeps the remaining time
func (c *SessionClock) Pause() {
	c.running = false
}

// Resume continues from the paused remaining time
func (c *SessionClock) Resume() {
	c.Start()
}

// Tick consumes one second; returns true exactly once, on the tick that reaches zero
func (c *SessionClock) Tick() bool {
	if !c.running || c.timedOut {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.running = false
	c.timedOut = true
	return true
}

// Remaining returns whole seconds left
func (c SessionClock) Remaining() int { return c.remaining }

// Duration returns the configured length
func (c SessionClock) Duration() int { return c.duration }

// Running reports whether seconds are being consumed
func (c SessionClock) Running() bool { return c.running }

// TimedOut reports whether zero was reached
func (c SessionClock) TimedOut() bool { return c.timedOut }

// Warning reports the final countdown window used for the tick-tock cue
func (c SessionClock) Warning() bool {
	return c.running && c.remaining > 0 && c.remaining <= constants.WarningSeconds
}
