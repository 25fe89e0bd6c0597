package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same cue
	MinSoundGap = 50 * time.Millisecond
)

// Wrong Drop Buzz Timing
const (
	BuzzSoundDuration = 150 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 40 * time.Millisecond
)

// Correct Drop Bell Timing
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Drag/Throw Whoosh Timing
const (
	WhooshSoundDuration = 200 * time.Millisecond
	WhooshSoundAttack   = 80 * time.Millisecond
	WhooshSoundRelease  = 120 * time.Millisecond
)

// Zone Hover Blip Timing
const (
	BlipSoundDuration = 60 * time.Millisecond
	BlipSoundAttack   = 5 * time.Millisecond
	BlipSoundRelease  = 30 * time.Millisecond
)

// Countdown and Clock Timing
const (
	CountdownSoundDuration = 120 * time.Millisecond
	TickSoundDuration      = 30 * time.Millisecond
	SoundAttack            = 5 * time.Millisecond
	SoundRelease           = 20 * time.Millisecond
)

// Session End Fanfare Timing
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
)
