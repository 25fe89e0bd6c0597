package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/culture-catch/constants"
)

// Wave selects the source shape of a note
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// source returns an endless generator; frequencies the generators reject fall back to silence
func source(wave Wave, freq float64, rate beep.SampleRate) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	switch wave {
	case WaveSine:
		s, err = generators.SineTone(rate, freq)
	case WaveSquare:
		s, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		s, err = generators.SawtoothTone(rate, freq)
	default:
		return noise()
	}
	if err != nil {
		return generators.Silence(-1)
	}
	return s
}

// noise is endless white noise, identical on both channels
func noise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// note bounds a source to a fixed length with a linear attack and release
type note struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newNote(src beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *note {
	n := &note{
		src:     src,
		total:   rate.N(duration),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
	// Overlapping ramps are shortened to meet in the middle
	if n.attack+n.release > n.total {
		n.attack = n.total / 2
		n.release = n.total - n.attack
	}
	return n
}

// gain is the envelope level at sample pos
func (n *note) gain(pos int) float64 {
	switch {
	case n.attack > 0 && pos < n.attack:
		return float64(pos) / float64(n.attack)
	case n.release > 0 && pos >= n.total-n.release:
		return float64(n.total-pos) / float64(n.release)
	}
	return 1
}

func (n *note) Stream(samples [][2]float64) (int, bool) {
	remaining := n.total - n.pos
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	got, _ := n.src.Stream(samples)
	for i := 0; i < got; i++ {
		g := n.gain(n.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		n.pos++
	}
	return got, got > 0
}

func (n *note) Err() error { return n.src.Err() }

// newVolume scales linearly; zero maps to Silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone builds one enveloped note
func tone(freq float64, wave Wave, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newNote(source(wave, freq, rate), duration, attack, release, rate)
}

// CreatePickupSound generates a soft rising whoosh when a card is grabbed
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	noise := tone(0, WaveNoise, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)
	return newVolume(noise, 0.5)
}

// CreateHoverSound generates a short blip when the card enters the zone
func CreateHoverSound(rate beep.SampleRate) beep.Streamer {
	return tone(660.0, WaveSine, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)
}

// CreateCorrectSound generates a bell ding for a collected card
func CreateCorrectSound(rate beep.SampleRate) beep.Streamer {
	// Fundamental (A5)
	fund := tone(880.0, WaveSine, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, rate)
	// Octave up
	over := tone(1760.0, WaveSine, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, rate)

	// Take bounds the mix to the note length
	return beep.Take(rate.N(constants.BellSoundDuration), beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	))
}

// CreateWrongSound generates a harsh buzz for an incorrect drop
func CreateWrongSound(rate beep.SampleRate) beep.Streamer {
	return tone(100.0, WaveSaw, constants.BuzzSoundDuration, constants.BuzzSoundAttack, constants.BuzzSoundRelease, rate)
}

// CreateMissSound generates a falling two-note throw-back
func CreateMissSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(440.0, WaveSine, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)
	n2 := tone(330.0, WaveSine, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)
	return newVolume(beep.Seq(n1, n2), 0.6)
}

// CreateCountdownSound generates the 3-2-1 beep
func CreateCountdownSound(rate beep.SampleRate) beep.Streamer {
	return tone(523.25, WaveSquare, constants.CountdownSoundDuration, constants.SoundAttack, constants.SoundRelease, rate)
}

// CreateGoSound generates the higher "Go" beep
func CreateGoSound(rate beep.SampleRate) beep.Streamer {
	return tone(1046.5, WaveSquare, 2*constants.CountdownSoundDuration, constants.SoundAttack, constants.SoundRelease, rate)
}

// CreateTickSound generates one tick of the final-seconds tick-tock
func CreateTickSound(rate beep.SampleRate) beep.Streamer {
	return tone(1200.0, WaveSquare, constants.TickSoundDuration, constants.SoundAttack, constants.SoundRelease, rate)
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	return melody(rate, WaveSaw, 392.0, 311.13, 261.63)
}

// CreateVictorySound generates an ascending major arpeggio
func CreateVictorySound(rate beep.SampleRate) beep.Streamer {
	return melody(rate, WaveSquare, 523.25, 659.25, 783.99, 1046.5)
}

func melody(rate beep.SampleRate, wave Wave, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, wave, constants.GameOverNoteDuration, constants.SoundAttack, constants.GameOverNoteRelease, rate)
	}
	return beep.Seq(notes...)
}

// GetSoundEffect returns the streamer for a cue scaled by the configured volumes
// Returns nil for unknown cues
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch soundType {
	case SoundPickup:
		s = CreatePickupSound(rate)
	case SoundHover:
		s = CreateHoverSound(rate)
	case SoundCorrect:
		s = CreateCorrectSound(rate)
	case SoundWrong:
		s = CreateWrongSound(rate)
	case SoundMiss:
		s = CreateMissSound(rate)
	case SoundCountdown:
		s = CreateCountdownSound(rate)
	case SoundGo:
		s = CreateGoSound(rate)
	case SoundTick:
		s = CreateTickSound(rate)
	case SoundGameOver:
		s = CreateGameOverSound(rate)
	case SoundVictory:
		s = CreateVictorySound(rate)
	default:
		return nil
	}

	return newVolume(s, cfg.EffectVolumes[soundType]*cfg.MasterVolume)
}
