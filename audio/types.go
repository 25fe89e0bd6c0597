package audio

// SoundType identifies one feedback cue
type SoundType int

const (
	SoundPickup    SoundType = iota // Card picked up
	SoundHover                      // Card entered the drop zone
	SoundCorrect                    // Correct card collected
	SoundWrong                      // Incorrect card dropped in the zone
	SoundMiss                       // Card thrown back from outside the zone
	SoundCountdown                  // Countdown step
	SoundGo                         // Countdown reached zero
	SoundTick                       // Final seconds tick-tock
	SoundGameOver                   // Session ended on timeout
	SoundVictory                    // Every correct card collected
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	"pickup", "hover", "correct", "wrong", "miss",
	"countdown", "go", "tick", "gameover", "victory",
}

// String returns the cue name used in configuration
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a cue name
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundPickup:    0.3,
			SoundHover:     0.3,
			SoundCorrect:   0.6,
			SoundWrong:     0.5,
			SoundMiss:      0.3,
			SoundCountdown: 0.5,
			SoundGo:        0.6,
			SoundTick:      0.4,
			SoundGameOver:  0.6,
			SoundVictory:   0.7,
		},
		SampleRate: 44100,
	}
}
