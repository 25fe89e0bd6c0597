package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the animation tick interval (~60 Hz)
	FrameUpdateInterval = 16 * time.Millisecond

	// SecondTickInterval drives the countdown and the session clock
	SecondTickInterval = 1 * time.Second

	// RenderInterval is the terminal redraw interval, decoupled from the simulation tick
	RenderInterval = 33 * time.Millisecond
)

// Session Defaults
const (
	// DefaultSlots is the number of concurrently floating cards (K)
	DefaultSlots = 5

	// DefaultCorrectDelta is awarded for a correct card dropped in the zone
	DefaultCorrectDelta = 1

	// DefaultWrongDelta is applied for an incorrect card dropped in the zone
	DefaultWrongDelta = -1

	// DefaultScoreMin and DefaultScoreMax bound the culture meter
	DefaultScoreMin = -3
	DefaultScoreMax = 3

	// DefaultDurationSeconds is the session clock start value
	DefaultDurationSeconds = 90

	// DefaultCountdownSeconds is the 3..Go countdown before play
	DefaultCountdownSeconds = 3

	// WarningSeconds is the final window that triggers the tick-tock cue
	WarningSeconds = 5
)

// Transition Timing (in animation ticks)
const (
	// ReturnTicks is the length of the thrown-back animation (~350ms)
	ReturnTicks = 21

	// VanishTicks is the disappearance transition before a slot refill (~350ms)
	VanishTicks = 21

	// ZoneFlashTicks is how long the zone shows a correct/wrong verdict
	ZoneFlashTicks = 21
)

// Card Geometry (in cells)
const (
	CardWidth  = 16
	CardHeight = 3

	// ReturnPad is how far beyond the chosen edge a return animation starts
	ReturnPad = 3
)

// SlotAnchors are the first-appearance positions per slot, as fractions of the play area size
var SlotAnchors = [][2]float64{
	{0.10, 0.25},
	{0.55, 0.15},
	{0.40, 0.30},
	{0.70, 0.45},
	{0.18, 0.35},
}

// BaseVelocities are the initial per-card velocities in cells per tick, indexed by card ID modulo length
// Horizontal components are wider than vertical ones to compensate for the terminal cell aspect ratio
var BaseVelocities = [][2]float64{
	{0.18, 0.11},
	{-0.20, 0.08},
	{0.14, -0.09},
	{-0.16, -0.11},
	{0.21, 0.07},
	{-0.15, 0.10},
	{0.19, -0.09},
	{-0.18, 0.09},
	{0.15, 0.10},
	{-0.14, -0.08},
}
